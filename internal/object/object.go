package object

import "github.com/standardbeagle/xcproj/internal/ordered"

// Hooks lets an isa-specific subtype customize rendering and reference
// bookkeeping without the generic machinery knowing about it. Unknown isas
// fall back to noHooks, which no-ops every method.
type Hooks interface {
	// RenderComment computes the inline "/* ... */" annotation used when
	// another object holds a ref to this one. Empty means no comment.
	RenderComment(o *Object) string
	// RenderSingleLine reports whether this object's content should be
	// rendered on one line instead of indented across many.
	RenderSingleLine(o *Object) bool
	// OnAddedReference is called when another object (or none, at the
	// root) adds a reference onto o.
	OnAddedReference(o *Object, from *Object)
	// OnRemovedReference is called when a reference onto o is removed.
	OnRemovedReference(o *Object, from *Object)
}

// noHooks is the zero-behavior Hooks implementation used for isas with no
// registered subtype.
type noHooks struct{}

func (noHooks) RenderComment(*Object) string        { return "" }
func (noHooks) RenderSingleLine(*Object) bool       { return false }
func (noHooks) OnAddedReference(*Object, *Object)   {}
func (noHooks) OnRemovedReference(*Object, *Object) {}

// Object is a record with an immutable isa and id and a mutable Dictionary
// content whose first entry must be isa.
type Object struct {
	isa     string
	id      string
	Content *Dictionary

	hooks Hooks

	referencedBy map[*Object]bool // weak back-references, set-like
	removed      bool
}

func (*Object) valueMarker() {}

// newObject constructs an Object directly; used by the factory.
func newObject(isa, id string, content *Dictionary, hooks Hooks) *Object {
	if hooks == nil {
		hooks = noHooks{}
	}
	return &Object{
		isa:          isa,
		id:           id,
		Content:      content,
		hooks:        hooks,
		referencedBy: make(map[*Object]bool),
	}
}

// ISA returns the immutable type tag.
func (o *Object) ISA() string { return o.isa }

// StringAttr returns content[key]'s literal string, if key is present and
// holds a Literal (plain or ref — only the string matters here).
func (o *Object) StringAttr(key string) (string, bool) {
	v, ok := o.Content.Get(key)
	if !ok {
		return "", false
	}
	lit, ok := v.(Literal)
	if !ok {
		return "", false
	}
	return lit.String(), true
}

// ID returns the immutable, process-unique identifier.
func (o *Object) ID() string { return o.id }

// RenderComment returns the subtype's inline annotation for refs to this
// object.
func (o *Object) RenderComment() string { return o.hooks.RenderComment(o) }

// RenderSingleLine reports whether this object renders on one line.
func (o *Object) RenderSingleLine() bool { return o.hooks.RenderSingleLine(o) }

// parentProvider is implemented by hook types that cache an owning
// referrer (parentCache embedders: groupHooks, fileReferenceHooks,
// buildFileHooks).
type parentProvider interface {
	Parent() *Object
}

// Parent returns the object's cached owning referrer — the group a file
// reference or subgroup lives in, the build phase a build file lives in
// — or nil if this isa's hooks don't track one. Used by path resolution
// to walk a group chain without knowing about isa-specific hook types.
func (o *Object) Parent() *Object {
	if p, ok := o.hooks.(parentProvider); ok {
		return p.Parent()
	}
	return nil
}

// AddReference registers from as a referrer of o (nil for a root-level
// reference) and invokes the subtype hook.
func (o *Object) AddReference(from *Object) {
	if from != nil {
		o.referencedBy[from] = true
	}
	o.hooks.OnAddedReference(o, from)
}

// RemoveReference unregisters from as a referrer of o and invokes the
// subtype hook.
func (o *Object) RemoveReference(from *Object) {
	if from != nil {
		delete(o.referencedBy, from)
	}
	o.hooks.OnRemovedReference(o, from)
}

// ReferencedBy returns a snapshot of the objects currently holding a
// reference onto o. A snapshot is returned (not a live view) because weak
// referrer sets may transiently contain stale entries between a target's
// deallocation and the next mutation; callers must be able to iterate
// safely regardless.
func (o *Object) ReferencedBy() []*Object {
	out := make([]*Object, 0, len(o.referencedBy))
	for ref := range o.referencedBy {
		if ref.removed {
			continue
		}
		out = append(out, ref)
	}
	return out
}

// Section is an ordered map from Literal key to Object, holding every
// record of one isa. Keys are stored as the ref-variant Literal produced
// by Put so rendering can annotate them with the object's inline
// comment, the same as any other reference in the graph.
type Section struct {
	inner    *ordered.Dict[*Object]
	literals map[string]Literal
}

func newSection() *Section {
	return &Section{inner: ordered.NewDict[*Object](), literals: make(map[string]Literal)}
}

// Len returns the number of objects in the section.
func (s *Section) Len() int { return s.inner.Len() }

// Keys returns the keys in insertion order.
func (s *Section) Keys() []Literal {
	strs := s.inner.Keys()
	out := make([]Literal, len(strs))
	for i, k := range strs {
		out[i] = s.literals[k]
	}
	return out
}

// Get looks up an object by key string.
func (s *Section) Get(key string) (*Object, bool) {
	return s.inner.Get(key)
}

// Each iterates section entries in insertion order.
func (s *Section) Each(fn func(key Literal, obj *Object) bool) {
	s.inner.Each(func(k string, obj *Object) bool {
		return fn(s.literals[k], obj)
	})
}

func (s *Section) set(key Literal, obj *Object) {
	s.literals[key.str] = key
	s.inner.Set(key.str, obj)
}

func (s *Section) delete(key string) bool {
	if !s.inner.Delete(key) {
		return false
	}
	delete(s.literals, key)
	return true
}

// Sections is an ordered map from isa name to Section.
type Sections struct {
	inner *ordered.Dict[*Section]
}

func (*Sections) valueMarker() {}

// NewSections returns an empty Sections container.
func NewSections() *Sections {
	return &Sections{inner: ordered.NewDict[*Section]()}
}

// Names returns the isa names in insertion (first-seen) order.
func (s *Sections) Names() []string { return s.inner.Keys() }

// Section returns the Section for isa, if any.
func (s *Sections) Section(isa string) (*Section, bool) {
	return s.inner.Get(isa)
}

// Each iterates sections in insertion order.
func (s *Sections) Each(fn func(isa string, sec *Section) bool) {
	s.inner.Each(fn)
}

// Put inserts obj into the section for its isa, creating the section if
// necessary. The section key is a non-silent ref literal so rendering
// annotates it with obj's inline comment, matching how every real
// project.pbxproj writes its objects-section entries.
func (s *Sections) Put(obj *Object) {
	sec := s.sectionFor(obj.isa, true)
	sec.set(NewRef(obj.id, obj, false), obj)
}

func (s *Sections) sectionFor(isa string, create bool) *Section {
	if sec, ok := s.inner.Get(isa); ok {
		return sec
	}
	if !create {
		return nil
	}
	sec := newSection()
	s.inner.Set(isa, sec)
	return sec
}

// ObjectByID searches every section for id, returning the first match and
// its isa.
func (s *Sections) ObjectByID(id string) (*Object, string, bool) {
	for _, isa := range s.inner.Keys() {
		sec, _ := s.inner.Get(isa)
		if obj, ok := sec.Get(id); ok {
			return obj, isa, true
		}
	}
	return nil, "", false
}

// Remove deletes id from the section named isa, and drops the section
// entirely if it becomes empty. Reports whether anything was removed.
func (s *Sections) Remove(isa, id string) bool {
	sec, ok := s.inner.Get(isa)
	if !ok {
		return false
	}
	if !sec.delete(id) {
		return false
	}
	if sec.Len() == 0 {
		s.inner.Delete(isa)
	}
	return true
}
