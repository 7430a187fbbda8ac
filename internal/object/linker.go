package object

// Linker resolves raw string identifiers embedded in a freshly parsed
// dictionary tree into strong Object references, registering weak
// back-edges as it goes, and finally re-buckets the flat objects map into
// Sections. It runs once, right after the plist parser produces the root
// dictionary and object.Create has turned each "objects" entry's raw
// content dictionary into an Object.
type Linker struct {
	objects    map[string]*Object // every known object, by id
	orderedIDs []string           // insertion order of the flat objects dictionary
}

// NewLinker returns a Linker that resolves ids against objects. orderedIDs
// must list every key of objects in the original on-disk insertion order,
// since Go maps have no stable iteration order and §4.3 requires bucketing
// to preserve it.
func NewLinker(objects map[string]*Object, orderedIDs []string) *Linker {
	return &Linker{objects: objects, orderedIDs: orderedIDs}
}

// Link walks the whole tree rooted at root, rewriting ref-candidate keys
// and values in place, then returns a Sections container built from the
// (now-linked) flat objects map, preserving each object's original
// insertion order within its isa bucket.
func (lk *Linker) Link(root *Dictionary) *Sections {
	lk.linkDictionary(root, nil, false)
	return lk.bucket()
}

// linkDictionary implements spec §4.3's Dictionary case: for each entry,
// rewrite the key to a ref if it names a known id (silenced per rule (a)
// when the paired value is itself a plain Dictionary), then recurse into
// the value. silentLiterals is "inherit the caller's silent flag" for
// this dictionary's own entries — used when this dictionary is itself the
// value half of a remoteGlobalIDString entry one level up; it has no
// effect on the key-rewrite rule, only on how nested ref-candidate
// Literals (not already silenced by rule (a)/(b) at this level) are
// treated.
func (lk *Linker) linkDictionary(d *Dictionary, owner *Object, silentLiterals bool) {
	for i := 0; i < d.Len(); i++ {
		key, val := d.At(i)

		rewrittenKey := key
		if target, ok := lk.objects[key.String()]; ok {
			_, valueIsPlainDict := val.(*Dictionary)
			rewrittenKey = NewRef(key.String(), target, valueIsPlainDict)
			target.AddReference(owner)
		}

		// Rule (b): a value paired with the key remoteGlobalIDString is
		// always silenced, regardless of what silentLiterals was inherited
		// as. Any other key inherits the caller's flag.
		valueSilent := silentLiterals
		if key.String() == "remoteGlobalIDString" {
			valueSilent = true
		}
		linkedVal := lk.linkValue(val, owner, valueSilent)
		d.Set(rewrittenKey, linkedVal)
	}
}

// linkValue implements the Array/Object/Literal cases of §4.3, returning
// the (possibly rewritten) value to store back in the caller's slot.
func (lk *Linker) linkValue(v Value, owner *Object, silentLiterals bool) Value {
	switch val := v.(type) {
	case *Dictionary:
		lk.linkDictionary(val, owner, silentLiterals)
		return val
	case *Array:
		for i := 0; i < val.Len(); i++ {
			val.SetAt(i, lk.linkValue(val.At(i), owner, silentLiterals))
		}
		return val
	case *Object:
		lk.linkDictionary(val.Content, val, false)
		return val
	case Literal:
		if val.IsRef() {
			return val
		}
		target, ok := lk.objects[val.String()]
		if !ok {
			return val
		}
		target.AddReference(owner)
		return NewRef(val.String(), target, silentLiterals)
	default:
		return v
	}
}

// bucket groups every linked object into a Sections container keyed by
// isa, preserving each object's relative insertion order within its
// section, per the orderedIDs supplied to NewLinker.
func (lk *Linker) bucket() *Sections {
	secs := NewSections()
	for _, id := range lk.orderedIDs {
		if obj, ok := lk.objects[id]; ok {
			secs.Put(obj)
		}
	}
	return secs
}
