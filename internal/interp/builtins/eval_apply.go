package builtins

import (
	"github.com/cwbudde/golisp/internal/interp/evaluator"
	"github.com/cwbudde/golisp/internal/interp/runtime"
)

// registerEvalApply installs the builtins that must call back into ev:
// `eval` (re-enters Eval in root, the REPL's own environment, so top-level
// defines from evaluated code are visible globally), `apply`, `map`, and
// `throw` (spec §4.6, §1's "Core Builtins" load-bearing list).
func registerEvalApply(env *runtime.Environment, ev *evaluator.Evaluator, root *runtime.Environment) {
	def(env, "eval", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("eval", "1", len(args))
		}
		return ev.Eval(args[0], root)
	})

	def(env, "apply", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) < 2 {
			return nil, arityError("apply", "at least 2", len(args))
		}
		fn, ok := args[0].(*runtime.Fn)
		if !ok {
			return nil, typeError("apply", "a function", args[0])
		}
		last := args[len(args)-1]
		trailing, ok := runtime.Seq(last)
		if !ok {
			return nil, typeError("apply", "a list or vector as its final argument", last)
		}
		callArgs := make([]runtime.Value, 0, len(args)-2+len(trailing))
		callArgs = append(callArgs, args[1:len(args)-1]...)
		callArgs = append(callArgs, trailing...)
		return ev.Apply(fn, callArgs)
	})

	def(env, "map", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, arityError("map", "2", len(args))
		}
		fn, ok := args[0].(*runtime.Fn)
		if !ok {
			return nil, typeError("map", "a function", args[0])
		}
		items, ok := runtime.Seq(args[1])
		if !ok {
			return nil, typeError("map", "a list or vector", args[1])
		}
		out := make([]runtime.Value, len(items))
		for i, item := range items {
			v, err := ev.Apply(fn, []runtime.Value{item})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return runtime.NewList(out...), nil
	})

	def(env, "throw", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("throw", "1", len(args))
		}
		return nil, evaluator.Throw(args[0])
	})
}
