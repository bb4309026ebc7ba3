package evaluator

import "github.com/cwbudde/golisp/internal/interp/runtime"

// quasiquote lowers a quasiquoted form into one whose evaluation yields
// the intended result (spec §4.5 "Quasiquotation lowering"):
//
//   - List headed by `unquote`: the second element, verbatim.
//   - List: fold right; a `splice-unquote` element emits
//     (concat X acc), anything else emits (cons (qq elt) acc), starting
//     from an empty list.
//   - Vec: fold as for List, then wrap as (vec inner).
//   - Map or Sym: (quote X).
//   - anything else: X unchanged.
func quasiquote(ast runtime.Value) runtime.Value {
	switch t := ast.(type) {
	case *runtime.List:
		if len(t.Items) > 0 {
			if sym, ok := t.Items[0].(runtime.Sym); ok && sym == "unquote" {
				if len(t.Items) != 2 {
					return runtime.NewList(runtime.Sym("throw"), runtime.Str("unquote: expected 1 argument"))
				}
				return t.Items[1]
			}
		}
		return quasiquoteFoldList(t.Items)
	case *runtime.Vec:
		inner := quasiquoteFoldList(t.Items)
		return runtime.NewList(runtime.Sym("vec"), inner)
	case *runtime.Map, runtime.Sym:
		return runtime.NewList(runtime.Sym("quote"), ast)
	default:
		return ast
	}
}

func quasiquoteFoldList(items []runtime.Value) runtime.Value {
	acc := runtime.Value(runtime.NewList())
	for i := len(items) - 1; i >= 0; i-- {
		elt := items[i]
		if lst, ok := elt.(*runtime.List); ok && len(lst.Items) == 2 {
			if sym, ok := lst.Items[0].(runtime.Sym); ok && sym == "splice-unquote" {
				acc = runtime.NewList(runtime.Sym("concat"), lst.Items[1], acc)
				continue
			}
		}
		acc = runtime.NewList(runtime.Sym("cons"), quasiquote(elt), acc)
	}
	return acc
}
