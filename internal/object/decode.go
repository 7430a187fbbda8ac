package object

import (
	"github.com/go-viper/mapstructure/v2"
)

// Decode materializes d into a plain Go struct or map via mapstructure,
// for callers that want a typed read-only view of a subtree instead of
// walking Dictionary/Array/Literal directly. It is a pure read path: there
// is no corresponding Encode, and the owning graph is never touched.
func (d *Dictionary) Decode(into any) error {
	return mapstructure.Decode(toPlain(d), into)
}

// toPlain recursively unwraps a Value into plain Go data: Dictionary becomes
// map[string]any, Array becomes []any, Literal and Object become strings
// (a ref's id, or an object's own id).
func toPlain(v Value) any {
	switch val := v.(type) {
	case *Dictionary:
		out := make(map[string]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			key, elem := val.At(i)
			out[key.String()] = toPlain(elem)
		}
		return out
	case *Array:
		out := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = toPlain(val.At(i))
		}
		return out
	case Literal:
		return val.String()
	case *Object:
		return val.ID()
	case *Sections:
		out := make(map[string]any, len(val.Names()))
		val.Each(func(isa string, sec *Section) bool {
			ids := make([]string, 0, sec.Len())
			sec.Each(func(_ Literal, obj *Object) bool {
				ids = append(ids, obj.ID())
				return true
			})
			out[isa] = ids
			return true
		})
		return out
	default:
		return nil
	}
}
