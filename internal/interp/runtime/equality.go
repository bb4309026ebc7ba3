package runtime

// Equal implements deep structural equality across every Value case,
// including the rule that List and Vec compare equal element-wise across
// each other (spec §3: `(= '(1 2) [1 2])` is true) while Atom equality is
// reference identity and Fn is never equal to anything, including itself.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Sym:
		bv, ok := b.(Sym)
		return ok && av == bv
	case Kw:
		bv, ok := b.(Kw)
		return ok && av == bv
	case *List, *Vec:
		aItems, _ := Seq(a)
		bItems, ok := Seq(b)
		if !ok {
			return false
		}
		return equalItems(aItems, bItems)
	case *Map:
		bv, ok := b.(*Map)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.Keys() {
			aVal, _ := av.Get(k)
			bVal, ok := bv.Get(k)
			if !ok || !Equal(aVal, bVal) {
				return false
			}
		}
		return true
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && av == bv
	case *Fn:
		return false
	default:
		return false
	}
}

func equalItems(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
