package xcproj

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/standardbeagle/xcproj/internal/workspacexml"
)

// workspaceDataFileName is the fixed name of a workspace's XML manifest
// inside its .xcworkspace bundle.
const workspaceDataFileName = "contents.xcworkspacedata"

// Workspace wraps a parsed (or freshly constructed)
// contents.xcworkspacedata manifest.
type Workspace struct {
	inner      *workspacexml.Workspace
	path       string
	bundlePath string
}

// NewWorkspace returns an empty Workspace anchored at path, which may be
// either the .xcworkspace bundle directory or its
// contents.xcworkspacedata file directly; no file is read.
func NewWorkspace(path string) *Workspace {
	bundlePath, filePath := resolveWorkspacePaths(path)
	return &Workspace{
		inner:      workspacexml.New(filepath.Dir(bundlePath)),
		path:       filePath,
		bundlePath: bundlePath,
	}
}

// OpenWorkspace loads a Workspace from either a directory path ending in
// ".xcworkspace" or the path to its contents.xcworkspacedata file
// directly.
func OpenWorkspace(path string) (*Workspace, error) {
	_, filePath := resolveWorkspacePaths(path)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return ParseWorkspace(filePath, string(data))
}

func resolveWorkspacePaths(path string) (bundlePath, filePath string) {
	if strings.HasSuffix(path, workspaceDataFileName) {
		return filepath.Dir(path), path
	}
	return path, filepath.Join(path, workspaceDataFileName)
}

// ParseWorkspace builds a Workspace from already-read source text. path
// should be the manifest's on-disk location (or a nominal stand-in); the
// workspace directory used to resolve "container:" locations is its
// grandparent (the directory the .xcworkspace bundle itself lives in).
func ParseWorkspace(path, src string) (*Workspace, error) {
	bundlePath := filepath.Dir(path)
	dir := filepath.Dir(bundlePath)
	inner, err := workspacexml.Parse(dir, src)
	if err != nil {
		return nil, err
	}
	return &Workspace{inner: inner, path: path, bundlePath: bundlePath}, nil
}

// Path returns the contents.xcworkspacedata file path.
func (w *Workspace) Path() string { return w.path }

// BundlePath returns the enclosing .xcworkspace directory.
func (w *Workspace) BundlePath() string { return w.bundlePath }

// Content renders the workspace back to its XML text.
func (w *Workspace) Content() string {
	return w.inner.Render()
}

// Write renders the workspace and replaces its source file (or, if to is
// given and non-empty, that path instead) atomically.
func (w *Workspace) Write(to ...string) error {
	target := w.path
	if len(to) > 0 && to[0] != "" {
		target = to[0]
	}
	return atomicWriteFile(target, w.Content())
}

// ProjectReferences returns every member-project reference discovered in
// the workspace, in document order.
func (w *Workspace) ProjectReferences() []*workspacexml.ProjectReference {
	return w.inner.ProjectReferences()
}

// Lookup returns the cached reference whose resolved URL is url.
func (w *Workspace) Lookup(url string) (*workspacexml.ProjectReference, bool) {
	return w.inner.Lookup(url)
}

// AppendProjectReference inserts a new FileRef for url at index i
// (clamped into range), using an "absolute:" location when absolute is
// true and a "container:" location otherwise.
func (w *Workspace) AppendProjectReference(url string, absolute bool, i int) *workspacexml.ProjectReference {
	return w.inner.AppendFileRef(url, absolute, i)
}

// RemoveProjectReference detaches the FileRef whose resolved URL is url.
func (w *Workspace) RemoveProjectReference(url string) bool {
	return w.inner.RemoveURL(url)
}
