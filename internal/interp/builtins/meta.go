package builtins

import (
	"github.com/cwbudde/golisp/internal/interp/evaluator"
	"github.com/cwbudde/golisp/internal/interp/runtime"
)

func registerMeta(env *runtime.Environment) {
	def(env, "meta", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("meta", "1", len(args))
		}
		m, err := runtime.Meta(args[0])
		if err != nil {
			return nil, evaluator.AsThrown(err)
		}
		return m, nil
	})

	def(env, "with-meta", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, arityError("with-meta", "2", len(args))
		}
		v, err := runtime.WithMeta(args[0], args[1])
		if err != nil {
			return nil, evaluator.AsThrown(err)
		}
		return v, nil
	})
}
