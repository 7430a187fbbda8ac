package xcconfig

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Reader abstracts the filesystem read needed to resolve #include
// directives, so loading can be exercised against an in-memory fixture
// as easily as the real filesystem.
type Reader func(path string) (string, error)

// Configuration is a loaded .xcconfig file: its line list, the
// Configurations its includes resolved to, and the overlay tree derived
// from both. Downstream tracks every Configuration that included this
// one (weakly, per §5 — a plain map the owning Configuration mutates,
// tolerant of stale entries since nothing here ever actually frees a
// Configuration out from under a live downstream set in-process).
type Configuration struct {
	URL  string
	dir  string
	read Reader

	includesEnabled bool
	lines           []Line
	includeTargets  map[string]*Configuration // raw include path -> resolved target
	downstream      map[*Configuration]bool

	tree *Tree
}

// Load parses url's contents and, if includesEnabled, recursively
// resolves every #include against read, threading a shared visited-path
// bucket through the whole recursive load to catch cycles and diamond
// re-loads per §4.10.
func Load(url string, includesEnabled bool, read Reader) (*Configuration, error) {
	return load(url, includesEnabled, read, map[string]bool{})
}

func load(url string, includesEnabled bool, read Reader, bucket map[string]bool) (*Configuration, error) {
	src, err := read(url)
	if err != nil {
		return nil, err
	}

	lines, err := parseLines(src)
	if err != nil {
		return nil, err
	}

	cfg := &Configuration{
		URL:             url,
		dir:             filepath.Dir(url),
		read:            read,
		includesEnabled: includesEnabled,
		lines:           lines,
		includeTargets:  map[string]*Configuration{},
		downstream:      map[*Configuration]bool{},
	}

	if includesEnabled {
		if err := cfg.resolveIncludes(bucket); err != nil {
			return nil, err
		}
	}

	cfg.rebuildTree()
	return cfg, nil
}

func parseLines(src string) ([]Line, error) {
	rawLines := strings.Split(src, "\n")
	out := make([]Line, 0, len(rawLines))
	for _, raw := range rawLines {
		raw = strings.TrimSuffix(raw, "\r")
		ln, err := ParseLine(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, ln)
	}
	return out, nil
}

func (cfg *Configuration) resolveIncludes(bucket map[string]bool) error {
	bucket[cfg.URL] = true
	for _, ln := range cfg.lines {
		if ln.Kind != KindInclude {
			continue
		}
		resolved := filepath.Join(cfg.dir, ln.Path)

		if bucket[resolved] {
			if ln.Optional {
				continue
			}
			return fmt.Errorf("xcconfig: include cycle or diamond re-load at %q (from %q)", resolved, cfg.URL)
		}

		target, err := load(resolved, cfg.includesEnabled, cfg.read, bucket)
		if err != nil {
			if ln.Optional {
				continue
			}
			return err
		}
		cfg.includeTargets[ln.Path] = target
		target.downstream[cfg] = true
	}
	return nil
}

// UpdateTree implements update-configuration-tree: rebuild this
// Configuration's tree from scratch in line order — config lines insert
// directly, include lines overlay their target's whole tree — then
// broadcast the same rebuild to every live downstream.
func (cfg *Configuration) UpdateTree() {
	cfg.rebuildTree()
}

func (cfg *Configuration) rebuildTree() {
	tree := newTree()
	for _, ln := range cfg.lines {
		switch ln.Kind {
		case KindConfig:
			tree.set(ln.Conditions, ln.Key, Content{Owner: cfg, Values: ln.Values})
		case KindInclude:
			if target, ok := cfg.includeTargets[ln.Path]; ok {
				target.tree.each(func(c Conditions, key string, content Content) {
					tree.set(c, key, content)
				})
			}
		}
	}
	cfg.tree = tree
	cfg.broadcastDownstream()
}

// broadcastDownstream rebuilds every Configuration that includes this
// one, over a snapshot of the downstream set so a downstream's own
// rebuild (which may in turn touch its own downstream bookkeeping)
// never mutates the set out from under this iteration.
func (cfg *Configuration) broadcastDownstream() {
	snapshot := make([]*Configuration, 0, len(cfg.downstream))
	for d := range cfg.downstream {
		snapshot = append(snapshot, d)
	}
	for _, d := range snapshot {
		d.rebuildTree()
	}
}

// Tree returns the current overlay tree.
func (cfg *Configuration) Tree() *Tree { return cfg.tree }

// ValueForKey looks up key at the given coordinate, "*" meaning the
// literal wildcard coordinate, not an unspecified-dimension match.
func (cfg *Configuration) ValueForKey(key, config, sdk, arch string) ([]string, bool) {
	return cfg.tree.ValueForKey(key, config, sdk, arch)
}

// Lines returns the parsed line list, in file order.
func (cfg *Configuration) Lines() []Line { return cfg.lines }

// AppendLine appends ln to the end of the line list. It does not rebuild
// the tree or broadcast to downstream Configurations on its own — call
// UpdateTree afterward, once, after appending everything a caller wants
// in a single batch.
func (cfg *Configuration) AppendLine(ln Line) {
	cfg.lines = append(cfg.lines, ln)
}
