// Package object implements the in-memory project graph: the Literal/Value
// type hierarchy, typed Objects keyed by isa, reference linking with weak
// back-edges, section bucketing, and reference-purging removal. This is
// the hub of the library: both the plist and workspace-XML components
// produce and consume these types.
package object

import "github.com/standardbeagle/xcproj/internal/ordered"

// Value is any value that can appear in the graph: a Literal, a Dictionary,
// an Array, an Object, or a Sections container.
type Value interface {
	valueMarker()
}

// Literal is a tagged union of a plain string or a reference to an Object.
// Equality and hashing use only the string / id: a reference to id "X"
// compares equal to the plain string "X". Silent suppresses comment
// emission for this occurrence during rendering.
type Literal struct {
	str    string
	target *Object // non-nil for the ref variant; weak (no ownership)
	isRef  bool
	Silent bool
}

func (Literal) valueMarker() {}

// NewLiteral returns a plain-string Literal.
func NewLiteral(s string) Literal {
	return Literal{str: s}
}

// NewRef returns a ref-variant Literal pointing at target, identified by id.
// silent suppresses its inline render comment.
func NewRef(id string, target *Object, silent bool) Literal {
	return Literal{str: id, target: target, isRef: true, Silent: silent}
}

// String returns the underlying string: the plain string, or the
// referenced id for a ref literal.
func (l Literal) String() string { return l.str }

// IsRef reports whether l is the ref variant.
func (l Literal) IsRef() bool { return l.isRef }

// Target returns the referenced Object and whether the weak handle is
// still alive. A detached handle (the target was removed) returns
// (nil, false) rather than panicking.
func (l Literal) Target() (*Object, bool) {
	if !l.isRef || l.target == nil {
		return nil, false
	}
	if l.target.removed {
		return nil, false
	}
	return l.target, true
}

// Equal implements Literal equality per spec: only the string/id matters,
// not the variant.
func (l Literal) Equal(other Literal) bool {
	return l.str == other.str
}

// Dictionary is an ordered map whose keys are Literals and whose values are
// Values. Order is insertion order, since the IDE's differ is sensitive to
// key order inside the project file. Built on the ordered.Dict hash index
// so lookup stays O(1) as project files grow into the thousands of
// objects; the key Literal (which may be a ref with its own Silent flag)
// is tracked alongside the string used for hashing and comparison.
type Dictionary struct {
	inner    *ordered.Dict[Value]
	literals map[string]Literal
}

func (*Dictionary) valueMarker() {}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{inner: ordered.NewDict[Value](), literals: make(map[string]Literal)}
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return d.inner.Len() }

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []Literal {
	strs := d.inner.Keys()
	out := make([]Literal, len(strs))
	for i, s := range strs {
		out[i] = d.literals[s]
	}
	return out
}

// At returns the key/value pair at position i.
func (d *Dictionary) At(i int) (Literal, Value) {
	s, v := d.inner.At(i)
	return d.literals[s], v
}

// Get looks up a value by its string key, regardless of whether the
// matching stored key is plain or ref (Literal equality uses only the
// string).
func (d *Dictionary) Get(key string) (Value, bool) {
	return d.inner.Get(key)
}

// GetLiteral returns the stored key Literal for key, if present.
func (d *Dictionary) GetLiteral(key string) (Literal, bool) {
	lit, ok := d.literals[key]
	return lit, ok
}

// Has reports whether key is present.
func (d *Dictionary) Has(key string) bool {
	return d.inner.Has(key)
}

// Set inserts or updates the entry for key (matched by string), preserving
// the position of an existing key and appending new keys at the end.
func (d *Dictionary) Set(key Literal, value Value) {
	d.literals[key.str] = key
	d.inner.Set(key.str, value)
}

// SetString is a convenience for Set(NewLiteral(key), value).
func (d *Dictionary) SetString(key string, value Value) {
	d.Set(NewLiteral(key), value)
}

// Delete removes the entry for key (matched by string). Reports whether
// anything was removed.
func (d *Dictionary) Delete(key string) bool {
	if !d.inner.Delete(key) {
		return false
	}
	delete(d.literals, key)
	return true
}

// Each iterates entries in insertion order. fn may return false to stop
// early.
func (d *Dictionary) Each(fn func(key Literal, value Value) bool) {
	d.inner.Each(func(s string, v Value) bool {
		return fn(d.literals[s], v)
	})
}

// Array is an ordered sequence of Values, built on ordered.Array so
// index-shifting insert/remove logic lives in one place.
type Array struct {
	inner *ordered.Array[Value]
}

func (*Array) valueMarker() {}

// NewArray returns an array pre-populated with items.
func NewArray(items ...Value) *Array {
	return &Array{inner: ordered.NewArray(items...)}
}

// Len returns the number of elements.
func (a *Array) Len() int { return a.inner.Len() }

// At returns the element at index i.
func (a *Array) At(i int) Value { return a.inner.At(i) }

// Items returns the backing slice; callers must treat it as read-only and
// use the mutation methods to change contents.
func (a *Array) Items() []Value { return a.inner.Items() }

// Append adds v to the end.
func (a *Array) Append(v Value) {
	a.inner.Append(v)
}

// SetAt replaces the element at index i in place.
func (a *Array) SetAt(i int, v Value) {
	a.inner.SetAt(i, v)
}

// Insert places v at index i, clamped into [0, Len()].
func (a *Array) Insert(v Value, i int) {
	a.inner.Insert(v, i)
}

// RemoveAt deletes the element at index i.
func (a *Array) RemoveAt(i int) {
	a.inner.RemoveAt(i)
}

// RemoveWhere deletes every element for which match returns true. Positions
// are collected first (by building a fresh slice), so match never sees a
// container being mutated mid-walk.
func (a *Array) RemoveWhere(match func(Value) bool) int {
	return a.inner.RemoveWhere(match)
}
