package evaluator

import "github.com/cwbudde/golisp/internal/interp/runtime"

// macroOf reports whether ast is a macro call — a non-empty List whose
// head Sym resolves, in env, to an *Fn with IsMacro set — and returns that
// Fn.
func macroOf(ast runtime.Value, env *runtime.Environment) (*runtime.Fn, bool) {
	lst, ok := ast.(*runtime.List)
	if !ok || len(lst.Items) == 0 {
		return nil, false
	}
	sym, ok := lst.Items[0].(runtime.Sym)
	if !ok {
		return nil, false
	}
	v, err := env.Get(sym)
	if err != nil {
		return nil, false
	}
	fn, ok := v.(*runtime.Fn)
	if !ok || !fn.IsMacro {
		return nil, false
	}
	return fn, true
}

// macroExpand1Step expands ast once if it is a macro call, reporting
// whether an expansion happened. Used by macroExpandFull to drive macro
// expansion to a fixpoint before normal evaluation proceeds (spec §4.5
// step 3: "Expand macros at the head").
func (e *Evaluator) macroExpand1Step(ast runtime.Value, env *runtime.Environment) (runtime.Value, bool, error) {
	fn, ok := macroOf(ast, env)
	if !ok {
		return ast, false, nil
	}
	lst := ast.(*runtime.List)
	expanded, err := e.Apply(fn, lst.Items[1:])
	if err != nil {
		return nil, false, err
	}
	return expanded, true, nil
}

// macroExpandFull repeatedly expands ast while it remains a macro call,
// implementing the `macroexpand` special form and spec §8's macro
// fixpoint property.
func (e *Evaluator) macroExpandFull(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	for {
		expanded, changed, err := e.macroExpand1Step(ast, env)
		if err != nil {
			return nil, err
		}
		if !changed {
			return ast, nil
		}
		ast = expanded
	}
}
