package xcproj

import (
	"os"

	"github.com/standardbeagle/xcproj/internal/xcconfig"
)

// Configuration wraps a loaded .xcconfig file: its line list (the
// round-trip source of truth) and the derived four-level lookup tree
// that overlays any #include targets it resolved.
type Configuration struct {
	inner *xcconfig.Configuration
	path  string
}

// OpenConfiguration loads the .xcconfig file at path. When includes is
// true, #include directives are resolved recursively (cycle- and
// diamond-safe per spec §4.10); when false, include lines are kept in
// the line list but never followed, so the line list still round-trips
// but the overlay tree only reflects this file's own config lines.
func OpenConfiguration(path string, includes bool) (*Configuration, error) {
	cfg, err := xcconfig.Load(path, includes, readConfigurationFile)
	if err != nil {
		return nil, err
	}
	return &Configuration{inner: cfg, path: path}, nil
}

func readConfigurationFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Path returns the .xcconfig file path this Configuration was loaded
// from.
func (c *Configuration) Path() string { return c.path }

// Content renders the configuration back to its .xcconfig text.
func (c *Configuration) Content() string {
	return c.inner.Render()
}

// Write renders the configuration and replaces its source file (or, if
// to is given and non-empty, that path instead) atomically.
func (c *Configuration) Write(to ...string) error {
	target := c.path
	if len(to) > 0 && to[0] != "" {
		target = to[0]
	}
	return atomicWriteFile(target, c.Content())
}

// ValueForKey looks up key at the given coordinate per §4.10;
// unspecified dimensions are matched literally against "*", never as a
// wildcard.
func (c *Configuration) ValueForKey(key, config, sdk, arch string) ([]string, bool) {
	return c.inner.ValueForKey(key, config, sdk, arch)
}

// Tree returns the configuration's current overlay tree.
func (c *Configuration) Tree() *xcconfig.Tree { return c.inner.Tree() }

// Lines returns the parsed line list, in file order.
func (c *Configuration) Lines() []xcconfig.Line { return c.inner.Lines() }

// AppendLine appends a new line (typically built with xcconfig.Line{Kind:
// xcconfig.KindConfig, ...}) and rebuilds the overlay tree, broadcasting
// the update to every downstream Configuration that included this one.
func (c *Configuration) AppendLine(ln xcconfig.Line) {
	c.inner.AppendLine(ln)
	c.inner.UpdateTree()
}
