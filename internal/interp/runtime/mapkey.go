package runtime

// mapKeyKind distinguishes which Value case a MapKey was derived from, so
// Str("foo") and Kw("foo") never collide as Map keys even though they
// share the same underlying name.
//
// This replaces the original implementation's fragile byte-prefix-on-
// keyword-keys encoding (spec §9 flags it as something "a rewrite" should
// replace) with the tagged-key approach the teacher's pkg/ident used for a
// different purpose (case-insensitive normalization); here the tag
// disjoints key spaces instead of folding case.
type mapKeyKind uint8

const (
	keyKindStr mapKeyKind = iota
	keyKindKw
)

// MapKey is the comparable, hashable key type behind Map's underlying Go
// map. Only Str and Kw values may become Map keys.
type MapKey struct {
	kind mapKeyKind
	name string
}

// KeyOf converts a Str or Kw value into a MapKey, reporting false for any
// other Value.
func KeyOf(v Value) (MapKey, bool) {
	switch t := v.(type) {
	case Str:
		return MapKey{kind: keyKindStr, name: string(t)}, true
	case Kw:
		return MapKey{kind: keyKindKw, name: string(t)}, true
	default:
		return MapKey{}, false
	}
}

// Value converts a MapKey back into the Str or Kw value it was derived
// from.
func (k MapKey) Value() Value {
	if k.kind == keyKindKw {
		return Kw(k.name)
	}
	return Str(k.name)
}
