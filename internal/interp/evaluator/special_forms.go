package evaluator

import "github.com/cwbudde/golisp/internal/interp/runtime"

// evalDef implements `def!`: evaluate expr, bind name in the current
// frame, return the value.
func (e *Evaluator) evalDef(lst *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	if len(lst.Items) != 3 {
		return nil, Throw(runtime.Str("def!: expected (def! name expr)"))
	}
	name, ok := lst.Items[1].(runtime.Sym)
	if !ok {
		return nil, Throw(runtime.Str("def!: name must be a symbol"))
	}
	value, err := e.evalGuarded(lst.Items[2], env)
	if err != nil {
		return nil, err
	}
	env.Set(name, value)
	return value, nil
}

// evalLetStar implements `let*`: create a child env, bind alternating
// name/value pairs (each value evaluated in the growing child env), and
// return (body, childEnv) for the caller to tail-continue with.
func (e *Evaluator) evalLetStar(lst *runtime.List, env *runtime.Environment) (runtime.Value, *runtime.Environment, error) {
	if len(lst.Items) != 3 {
		return nil, nil, Throw(runtime.Str("let*: expected (let* bindings body)"))
	}
	bindings, ok := runtime.Seq(lst.Items[1])
	if !ok {
		return nil, nil, Throw(runtime.Str("let*: bindings must be a list or vector"))
	}
	if len(bindings)%2 != 0 {
		return nil, nil, Throw(runtime.Str("let*: bindings must have an even number of forms"))
	}

	child := runtime.NewEnclosedEnvironment(env)
	for i := 0; i < len(bindings); i += 2 {
		name, ok := bindings[i].(runtime.Sym)
		if !ok {
			return nil, nil, Throw(runtime.Str("let*: binding name must be a symbol"))
		}
		value, err := e.evalGuarded(bindings[i+1], child)
		if err != nil {
			return nil, nil, err
		}
		child.Set(name, value)
	}

	return lst.Items[2], child, nil
}

// evalDo implements `do`: evaluate every form but the last, then return
// the last form for the caller to tail-continue with.
func (e *Evaluator) evalDo(lst *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	rest := lst.Items[1:]
	if len(rest) == 0 {
		return runtime.Nil{}, nil
	}
	for _, form := range rest[:len(rest)-1] {
		if _, err := e.evalGuarded(form, env); err != nil {
			return nil, err
		}
	}
	return rest[len(rest)-1], nil
}

// evalIf implements `if`: false is exactly Nil or Bool(false). Returns
// (tailForm, true) to tail-continue with, or (nil, false) when the form
// evaluates to Nil because no else branch was given.
func (e *Evaluator) evalIf(lst *runtime.List, env *runtime.Environment) (runtime.Value, bool, error) {
	if len(lst.Items) < 3 || len(lst.Items) > 4 {
		return nil, false, Throw(runtime.Str("if: expected (if cond then [else])"))
	}
	cond, err := e.evalGuarded(lst.Items[1], env)
	if err != nil {
		return nil, false, err
	}
	if runtime.IsTruthy(cond) {
		return lst.Items[2], true, nil
	}
	if len(lst.Items) == 4 {
		return lst.Items[3], true, nil
	}
	return nil, false, nil
}

// evalFnStar implements `fn*`: build a closure over the current env.
// params is a List or Vec of Syms; a lone `&` at position len-2 marks the
// final parameter as variadic, binding the remaining actuals as a List.
func (e *Evaluator) evalFnStar(lst *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	if len(lst.Items) != 3 {
		return nil, Throw(runtime.Str("fn*: expected (fn* params body)"))
	}
	rawParams, ok := runtime.Seq(lst.Items[1])
	if !ok {
		return nil, Throw(runtime.Str("fn*: params must be a list or vector"))
	}

	params, variadic, isVariadic, err := splitParams(rawParams)
	if err != nil {
		return nil, err
	}

	return runtime.NewClosure(params, variadic, isVariadic, lst.Items[2], env), nil
}

func splitParams(rawParams []runtime.Value) (params []runtime.Sym, variadic runtime.Sym, isVariadic bool, err error) {
	for i, p := range rawParams {
		sym, ok := p.(runtime.Sym)
		if !ok {
			return nil, "", false, Throw(runtime.Str("fn*: parameter names must be symbols"))
		}
		if sym == "&" {
			if i != len(rawParams)-2 {
				return nil, "", false, Throw(runtime.Str("fn*: '&' must be followed by exactly one parameter name"))
			}
			tail, ok := rawParams[i+1].(runtime.Sym)
			if !ok {
				return nil, "", false, Throw(runtime.Str("fn*: variadic parameter name must be a symbol"))
			}
			return params, tail, true, nil
		}
		params = append(params, sym)
	}
	return params, "", false, nil
}

// evalTryStar implements `try*`/`catch*`: evaluate expr; on a thrown
// error, bind the catch name to the payload in a child env and report the
// handler body as a tail continuation, so a catch handler that recurses
// (e.g. a retry loop) gets the same trampoline treatment as any other
// tail position. With no catch* arm, behaves as if expr alone had been
// evaluated. isTail reports whether (tailAst, tailEnv) should be fed back
// into the main Eval loop; when false, result already holds the final
// value.
func (e *Evaluator) evalTryStar(lst *runtime.List, env *runtime.Environment) (result runtime.Value, tailAst runtime.Value, tailEnv *runtime.Environment, isTail bool, err error) {
	if len(lst.Items) < 2 || len(lst.Items) > 3 {
		return nil, nil, nil, false, Throw(runtime.Str("try*: expected (try* expr [(catch* name handler)])"))
	}

	value, evalErr := e.evalGuarded(lst.Items[1], env)
	if evalErr == nil {
		return value, nil, nil, false, nil
	}
	thrown := AsThrown(evalErr)

	if len(lst.Items) != 3 {
		return nil, nil, nil, false, thrown
	}
	catchForm, ok := lst.Items[2].(*runtime.List)
	if !ok || len(catchForm.Items) != 3 {
		return nil, nil, nil, false, thrown
	}
	catchHead, ok := catchForm.Items[0].(runtime.Sym)
	if !ok || catchHead != "catch*" {
		return nil, nil, nil, false, thrown
	}
	name, ok := catchForm.Items[1].(runtime.Sym)
	if !ok {
		return nil, nil, nil, false, Throw(runtime.Str("catch*: binding name must be a symbol"))
	}

	child := runtime.NewEnclosedEnvironment(env)
	child.Set(name, thrown.Payload)
	return nil, catchForm.Items[2], child, true, nil
}

// evalDefMacro implements `defmacro!`: evaluate fn-expr (must yield an
// Fn), mark a copy as a macro, bind it, and return the value.
func (e *Evaluator) evalDefMacro(lst *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	if len(lst.Items) != 3 {
		return nil, Throw(runtime.Str("defmacro!: expected (defmacro! name fn-expr)"))
	}
	name, ok := lst.Items[1].(runtime.Sym)
	if !ok {
		return nil, Throw(runtime.Str("defmacro!: name must be a symbol"))
	}
	value, err := e.evalGuarded(lst.Items[2], env)
	if err != nil {
		return nil, err
	}
	fn, ok := value.(*runtime.Fn)
	if !ok {
		return nil, Throw(runtime.Str("defmacro!: expected a function"))
	}
	macro := fn.AsMacro()
	env.Set(name, macro)
	return macro, nil
}
