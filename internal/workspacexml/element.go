// Package workspacexml parses and renders contents.xcworkspacedata: the
// small XML dialect that lists a workspace's member projects and groups.
// It keeps its own minimal element tree (rather than unmarshaling into
// Go structs) because mutation, attribute order, and the IDE's specific
// indentation rules all need direct control over node identity.
package workspacexml

// Attr is a single XML attribute, order-preserving.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the workspace's XML tree.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

// NewElement returns an Element with the given name and no attributes or
// children.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// Attr returns the value of the named attribute, if present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets (or replaces) the named attribute's value, preserving its
// existing position, or appending it if new.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// AppendChild adds child as the last child.
func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

// InsertChild inserts child at index i, clamped into [0, len(Children)].
func (e *Element) InsertChild(child *Element, i int) {
	if i < 0 {
		i = 0
	}
	if i > len(e.Children) {
		i = len(e.Children)
	}
	e.Children = append(e.Children, nil)
	copy(e.Children[i+1:], e.Children[i:])
	e.Children[i] = child
}

// RemoveChild detaches child (by pointer identity) if present. Reports
// whether anything was removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			return true
		}
	}
	return false
}
