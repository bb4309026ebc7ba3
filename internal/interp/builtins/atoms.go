package builtins

import (
	"github.com/cwbudde/golisp/internal/interp/evaluator"
	"github.com/cwbudde/golisp/internal/interp/runtime"
)

func registerAtoms(env *runtime.Environment, ev *evaluator.Evaluator) {
	def(env, "atom", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("atom", "1", len(args))
		}
		return runtime.NewAtom(args[0]), nil
	})

	def(env, "deref", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("deref", "1", len(args))
		}
		a, ok := args[0].(*runtime.Atom)
		if !ok {
			return nil, typeError("deref", "an atom", args[0])
		}
		return a.Deref(), nil
	})

	def(env, "reset!", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, arityError("reset!", "2", len(args))
		}
		a, ok := args[0].(*runtime.Atom)
		if !ok {
			return nil, typeError("reset!", "an atom", args[0])
		}
		return a.Reset(args[1]), nil
	})

	def(env, "swap!", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) < 2 {
			return nil, arityError("swap!", "at least 2", len(args))
		}
		a, ok := args[0].(*runtime.Atom)
		if !ok {
			return nil, typeError("swap!", "an atom", args[0])
		}
		fn, ok := args[1].(*runtime.Fn)
		if !ok {
			return nil, typeError("swap!", "a function", args[1])
		}
		callArgs := make([]runtime.Value, 0, len(args)-1)
		callArgs = append(callArgs, a.Deref())
		callArgs = append(callArgs, args[2:]...)
		v, err := ev.Apply(fn, callArgs)
		if err != nil {
			return nil, err
		}
		return a.Reset(v), nil
	})
}
