package workspacexml

import (
	"strings"

	"github.com/standardbeagle/xcproj/internal/ordered"
)

// ProjectReference is a workspace's pointer to a member .xcodeproj,
// discovered by recursively resolving FileRef/Group location attributes
// per §4.7's prefix table.
type ProjectReference struct {
	elem     *Element
	parent   *Element
	FilePath string
	URL      string
}

// Element returns the underlying FileRef node, for callers that need to
// inspect or further mutate it directly.
func (r *ProjectReference) Element() *Element { return r.elem }

// Workspace wraps a parsed or freshly constructed contents.xcworkspacedata
// tree plus its derived ProjectReference cache.
type Workspace struct {
	dir   string
	root  *Element
	cache *ordered.Dict[*ProjectReference]
}

// New returns an empty Workspace with no root element yet; dir anchors
// container: locations and is the project-relative base for resolving
// group: chains that bottom out at the workspace itself.
func New(dir string) *Workspace {
	return &Workspace{dir: dir, cache: ordered.NewDict[*ProjectReference]()}
}

// Parse parses src and builds the ProjectReference cache by recursive
// descent over the tree, per spec §4.7.
func Parse(dir, src string) (*Workspace, error) {
	root, err := ParseElement(src)
	if err != nil {
		return nil, err
	}
	w := &Workspace{dir: dir, root: root, cache: ordered.NewDict[*ProjectReference]()}
	w.walk(root, "", dir)
	return w, nil
}

// walk implements the recursive descent: FileRef children with a
// .xcodeproj URL become cached ProjectReferences; Group children are
// recursed into with an updated parent-location/parent-directory; any
// other child, or any child lacking a location attribute, is ignored.
func (w *Workspace) walk(parent *Element, parentLocation, parentDir string) {
	for _, child := range parent.Children {
		loc, ok := child.Attr("location")
		if !ok {
			continue
		}
		location, url, ok := resolveLocation(loc, parentLocation, parentDir, w.dir)
		if !ok {
			continue
		}
		switch child.Name {
		case "FileRef":
			if strings.HasSuffix(url, ".xcodeproj") {
				w.cache.Set(url, &ProjectReference{elem: child, parent: parent, FilePath: location, URL: url})
			}
		case "Group":
			w.walk(child, location, url)
		}
	}
}

// resolveLocation implements the §4.7 prefix table. ok is false for any
// prefix outside the three recognized ones, meaning the caller should
// ignore this child entirely.
func resolveLocation(loc, parentLocation, parentDir, workspaceDir string) (location, url string, ok bool) {
	switch {
	case strings.HasPrefix(loc, "group:"):
		rest := loc[len("group:"):]
		return joinPath(parentLocation, rest), joinPath(parentDir, rest), true
	case strings.HasPrefix(loc, "container:"):
		rest := loc[len("container:"):]
		return rest, joinPath(workspaceDir, rest), true
	case strings.HasPrefix(loc, "absolute:"):
		rest := loc[len("absolute:"):]
		return rest, rest, true
	default:
		return "", "", false
	}
}

func joinPath(a, b string) string {
	if b == "" {
		return a
	}
	if a == "" {
		return b
	}
	return strings.TrimRight(a, "/") + "/" + strings.TrimLeft(b, "/")
}

// ProjectReferences returns every cached reference in discovery order.
func (w *Workspace) ProjectReferences() []*ProjectReference {
	return w.cache.Values()
}

// Lookup returns the cached reference whose resolved URL is url.
func (w *Workspace) Lookup(url string) (*ProjectReference, bool) {
	return w.cache.Get(url)
}

// AppendFileRef constructs a new FileRef XML node for url and inserts it
// into the root element at index i (clamped into range), creating the
// root Workspace element first if this is the first reference ever
// added. absolute selects an "absolute:" location; otherwise
// "container:" is used.
func (w *Workspace) AppendFileRef(url string, absolute bool, i int) *ProjectReference {
	if w.root == nil {
		w.root = NewElement("Workspace")
		w.root.SetAttr("version", "1.0")
	}
	prefix := "container:"
	if absolute {
		prefix = "absolute:"
	}
	elem := NewElement("FileRef")
	elem.SetAttr("location", prefix+url)
	w.root.InsertChild(elem, i)

	location, resolved, _ := resolveLocation(prefix+url, "", w.dir, w.dir)
	ref := &ProjectReference{elem: elem, parent: w.root, FilePath: location, URL: resolved}
	w.cache.Set(resolved, ref)
	return ref
}

// RemoveURL detaches the FileRef node whose resolved URL is url and
// evicts its cache entry. Reports whether anything was removed.
func (w *Workspace) RemoveURL(url string) bool {
	ref, ok := w.cache.Get(url)
	if !ok {
		return false
	}
	return w.removeRef(ref)
}

// RemoveReference detaches ref's node and evicts its cache entry.
func (w *Workspace) RemoveReference(ref *ProjectReference) bool {
	return w.removeRef(ref)
}

func (w *Workspace) removeRef(ref *ProjectReference) bool {
	if ref.parent == nil || !ref.parent.RemoveChild(ref.elem) {
		return false
	}
	w.cache.Delete(ref.URL)
	return true
}
