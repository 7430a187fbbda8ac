// Package ordered provides insertion-ordered map and sequence containers.
//
// The IDE's own differ is sensitive to key order inside a project file, so
// every dictionary and array in the object graph must preserve the order
// its entries were inserted in, not whatever order a language's native map
// would iterate in.
package ordered

import (
	"github.com/cespare/xxhash/v2"
)

// Dict is an insertion-ordered map from string keys to values of type V.
// Lookup is O(1) via an auxiliary hash index; iteration follows insertion
// order via the backing slice.
type Dict[V any] struct {
	keys   []string
	values []V
	index  map[uint64][]int // hash(key) -> positions in keys/values sharing that hash
}

// NewDict returns an empty ordered dictionary.
func NewDict[V any]() *Dict[V] {
	return &Dict[V]{index: make(map[uint64][]int)}
}

func hashKey(key string) uint64 {
	return xxhash.Sum64String(key)
}

func (d *Dict[V]) positionOf(key string) int {
	h := hashKey(key)
	for _, pos := range d.index[h] {
		if d.keys[pos] == key {
			return pos
		}
	}
	return -1
}

// Get returns the value for key and whether it was present.
func (d *Dict[V]) Get(key string) (V, bool) {
	var zero V
	pos := d.positionOf(key)
	if pos < 0 {
		return zero, false
	}
	return d.values[pos], true
}

// Has reports whether key is present.
func (d *Dict[V]) Has(key string) bool {
	return d.positionOf(key) >= 0
}

// Set inserts or updates the value for key. New keys are appended at the
// end, preserving the order existing keys were set in.
func (d *Dict[V]) Set(key string, value V) {
	if pos := d.positionOf(key); pos >= 0 {
		d.values[pos] = value
		return
	}
	pos := len(d.keys)
	d.keys = append(d.keys, key)
	d.values = append(d.values, value)
	h := hashKey(key)
	d.index[h] = append(d.index[h], pos)
}

// Delete removes key if present, preserving the relative order of the
// remaining keys. Reports whether anything was removed.
func (d *Dict[V]) Delete(key string) bool {
	pos := d.positionOf(key)
	if pos < 0 {
		return false
	}
	d.keys = append(d.keys[:pos], d.keys[pos+1:]...)
	d.values = append(d.values[:pos], d.values[pos+1:]...)
	d.rebuildIndex()
	return true
}

func (d *Dict[V]) rebuildIndex() {
	d.index = make(map[uint64][]int, len(d.keys))
	for i, k := range d.keys {
		h := hashKey(k)
		d.index[h] = append(d.index[h], i)
	}
}

// Len returns the number of entries.
func (d *Dict[V]) Len() int { return len(d.keys) }

// Keys returns the keys in insertion order. The returned slice must not be
// mutated by the caller.
func (d *Dict[V]) Keys() []string { return d.keys }

// Values returns the values in the same order as Keys.
func (d *Dict[V]) Values() []V { return d.values }

// At returns the key/value pair at position i (0-based, insertion order).
func (d *Dict[V]) At(i int) (string, V) {
	return d.keys[i], d.values[i]
}

// Each calls fn for every entry in insertion order. fn may return false to
// stop iteration early.
func (d *Dict[V]) Each(fn func(key string, value V) bool) {
	for i, k := range d.keys {
		if !fn(k, d.values[i]) {
			return
		}
	}
}

// Clone returns a shallow copy with its own backing storage.
func (d *Dict[V]) Clone() *Dict[V] {
	out := NewDict[V]()
	out.keys = append([]string(nil), d.keys...)
	out.values = append([]V(nil), d.values...)
	out.rebuildIndex()
	return out
}
