package builtins

import (
	"github.com/cwbudde/golisp/internal/interp/evaluator"
	"github.com/cwbudde/golisp/internal/interp/runtime"
)

func asInt(name string, v runtime.Value) (runtime.Int, error) {
	n, ok := v.(runtime.Int)
	if !ok {
		return 0, typeError(name, "a number", v)
	}
	return n, nil
}

func registerArithmetic(env *runtime.Environment) {
	def(env, "+", func(args []runtime.Value) (runtime.Value, error) {
		var sum runtime.Int
		for _, a := range args {
			n, err := asInt("+", a)
			if err != nil {
				return nil, err
			}
			sum += n
		}
		return sum, nil
	})

	def(env, "*", func(args []runtime.Value) (runtime.Value, error) {
		product := runtime.Int(1)
		for _, a := range args {
			n, err := asInt("*", a)
			if err != nil {
				return nil, err
			}
			product *= n
		}
		return product, nil
	})

	// `-` with one argument is identity in this dialect, not negation
	// (spec §4.6).
	def(env, "-", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, arityError("-", "at least 1", 0)
		}
		first, err := asInt("-", args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return first, nil
		}
		result := first
		for _, a := range args[1:] {
			n, err := asInt("-", a)
			if err != nil {
				return nil, err
			}
			result -= n
		}
		return result, nil
	})

	def(env, "/", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, arityError("/", "at least 1", 0)
		}
		first, err := asInt("/", args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			if first == 0 {
				return nil, evaluator.Throw(runtime.Str("/: division by zero"))
			}
			return 1 / first, nil
		}
		result := first
		for _, a := range args[1:] {
			n, err := asInt("/", a)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				return nil, evaluator.Throw(runtime.Str("/: division by zero"))
			}
			result /= n
		}
		return result, nil
	})

	registerComparison(env, "<", func(a, b runtime.Int) bool { return a < b })
	registerComparison(env, "<=", func(a, b runtime.Int) bool { return a <= b })
	registerComparison(env, ">", func(a, b runtime.Int) bool { return a > b })
	registerComparison(env, ">=", func(a, b runtime.Int) bool { return a >= b })

	def(env, "=", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, arityError("=", "2", len(args))
		}
		return runtime.Bool(runtime.Equal(args[0], args[1])), nil
	})
}

func registerComparison(env *runtime.Environment, name string, cmp func(a, b runtime.Int) bool) {
	def(env, name, func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, arityError(name, "2", len(args))
		}
		a, err := asInt(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := asInt(name, args[1])
		if err != nil {
			return nil, err
		}
		return runtime.Bool(cmp(a, b)), nil
	})
}
