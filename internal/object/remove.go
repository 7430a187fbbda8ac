package object

// Remove deletes target from sections and purges every reference to it
// throughout the graph, per spec §4.6:
//
//  1. Drop target from its section (and the section itself, if emptied).
//  2. For every back-referrer P, strip every occurrence in P's content
//     that references target (as a dict key, a dict value literal, or an
//     array element), bookkeeping target.RemoveReference(P) once per
//     occurrence purged.
//  3. Walk target's own content the same way, so every object target used
//     to reference no longer counts target among its referrers.
//
// Remove is idempotent: calling it again on an already-removed target is a
// no-op.
func Remove(sections *Sections, target *Object) {
	if target.removed {
		return
	}

	sections.Remove(target.ISA(), target.ID())

	for _, referrer := range target.ReferencedBy() {
		purgeReferencesTo(referrer.Content, target.ID(), func() {
			target.RemoveReference(referrer)
		})
	}

	forEachReference(target.Content, func(refID string) {
		if other, found := resolveByWalking(target.Content, refID); found {
			other.RemoveReference(target)
		}
	})

	target.removed = true
}

// resolveByWalking finds the live *Object behind a ref occurrence whose
// id is refID, by re-walking d. Ref Literals already carry a resolved
// weak pointer, so this just needs to find any one matching occurrence.
func resolveByWalking(d *Dictionary, refID string) (*Object, bool) {
	var found *Object
	var walk func(v Value)
	walk = func(v Value) {
		if found != nil {
			return
		}
		switch val := v.(type) {
		case Literal:
			if val.String() == refID {
				if t, alive := val.Target(); alive {
					found = t
				}
			}
		case *Dictionary:
			for i := 0; i < val.Len(); i++ {
				key, v2 := val.At(i)
				walk(key)
				walk(v2)
			}
		case *Array:
			for i := 0; i < val.Len(); i++ {
				walk(val.At(i))
			}
		case *Object:
			walk(val.Content)
		}
	}
	walk(d)
	return found, found != nil
}

// purgeReferencesTo removes every occurrence referencing targetID from d
// (dict keys, dict value literals, array elements), recursing into nested
// dictionaries and arrays. Positions are collected before any mutation, so
// nothing is mutated mid-walk. onPurge is called once per occurrence
// removed.
func purgeReferencesTo(d *Dictionary, targetID string, onPurge func()) {
	var toDelete []string
	for i := 0; i < d.Len(); i++ {
		key, val := d.At(i)
		if key.String() == targetID {
			toDelete = append(toDelete, key.String())
			onPurge()
			continue
		}
		if removeEntirely := purgeValueInPlace(val, targetID, onPurge); removeEntirely {
			toDelete = append(toDelete, key.String())
		}
	}
	for _, k := range toDelete {
		d.Delete(k)
	}
}

// purgeValueInPlace mutates v (a Dictionary or Array) in place to remove
// occurrences of targetID, or reports that v itself (a bare Literal) must
// be removed by the caller.
func purgeValueInPlace(v Value, targetID string, onPurge func()) (removeEntirely bool) {
	switch val := v.(type) {
	case Literal:
		if val.String() == targetID {
			onPurge()
			return true
		}
		return false
	case *Dictionary:
		purgeReferencesTo(val, targetID, onPurge)
		return false
	case *Array:
		val.RemoveWhere(func(item Value) bool {
			lit, ok := item.(Literal)
			if ok && lit.String() == targetID {
				onPurge()
				return true
			}
			return false
		})
		for i := 0; i < val.Len(); i++ {
			purgeValueInPlace(val.At(i), targetID, onPurge)
		}
		return false
	case *Object:
		purgeReferencesTo(val.Content, targetID, onPurge)
		return false
	default:
		return false
	}
}

// forEachReference visits every ref occurrence (key or value, recursively
// through dicts and arrays) in d and calls fn with the referenced id.
// Duplicate visits are fine: callers treat fn as idempotent bookkeeping.
func forEachReference(d *Dictionary, fn func(refID string)) {
	for i := 0; i < d.Len(); i++ {
		key, val := d.At(i)
		if key.IsRef() {
			fn(key.String())
		}
		walkReferences(val, fn)
	}
}

func walkReferences(v Value, fn func(refID string)) {
	switch val := v.(type) {
	case Literal:
		if val.IsRef() {
			fn(val.String())
		}
	case *Dictionary:
		forEachReference(val, fn)
	case *Array:
		for i := 0; i < val.Len(); i++ {
			walkReferences(val.At(i), fn)
		}
	case *Object:
		forEachReference(val.Content, fn)
	}
}
