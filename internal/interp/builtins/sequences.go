package builtins

import (
	"github.com/cwbudde/golisp/internal/interp/evaluator"
	"github.com/cwbudde/golisp/internal/interp/runtime"
)

func registerSequences(env *runtime.Environment) {
	def(env, "list", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.NewList(append([]runtime.Value(nil), args...)...), nil
	})

	def(env, "vector", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.NewVec(append([]runtime.Value(nil), args...)...), nil
	})

	def(env, "cons", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, arityError("cons", "2", len(args))
		}
		items, ok := runtime.Seq(args[1])
		if !ok {
			return nil, typeError("cons", "a list or vector", args[1])
		}
		out := make([]runtime.Value, 0, len(items)+1)
		out = append(out, args[0])
		out = append(out, items...)
		return runtime.NewList(out...), nil
	})

	def(env, "concat", func(args []runtime.Value) (runtime.Value, error) {
		var out []runtime.Value
		for _, a := range args {
			items, ok := runtime.Seq(a)
			if !ok {
				return nil, typeError("concat", "a list or vector", a)
			}
			out = append(out, items...)
		}
		return runtime.NewList(out...), nil
	})

	def(env, "vec", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("vec", "1", len(args))
		}
		if _, ok := args[0].(runtime.Nil); ok {
			return runtime.NewVec(), nil
		}
		items, ok := runtime.Seq(args[0])
		if !ok {
			return nil, typeError("vec", "a list or vector", args[0])
		}
		return runtime.NewVec(append([]runtime.Value(nil), items...)...), nil
	})

	def(env, "first", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("first", "1", len(args))
		}
		if _, ok := args[0].(runtime.Nil); ok {
			return runtime.Nil{}, nil
		}
		items, ok := runtime.Seq(args[0])
		if !ok {
			return nil, typeError("first", "a list or vector", args[0])
		}
		if len(items) == 0 {
			return runtime.Nil{}, nil
		}
		return items[0], nil
	})

	def(env, "rest", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("rest", "1", len(args))
		}
		if _, ok := args[0].(runtime.Nil); ok {
			return runtime.NewList(), nil
		}
		items, ok := runtime.Seq(args[0])
		if !ok {
			return nil, typeError("rest", "a list or vector", args[0])
		}
		if len(items) == 0 {
			return runtime.NewList(), nil
		}
		return runtime.NewList(append([]runtime.Value(nil), items[1:]...)...), nil
	})

	def(env, "nth", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, arityError("nth", "2", len(args))
		}
		items, ok := runtime.Seq(args[0])
		if !ok {
			return nil, typeError("nth", "a list or vector", args[0])
		}
		idx, ok := args[1].(runtime.Int)
		if !ok {
			return nil, typeError("nth", "an integer index", args[1])
		}
		if int(idx) < 0 || int(idx) >= len(items) {
			return nil, evaluator.Throw(runtime.Str("nth: index out of bounds"))
		}
		return items[idx], nil
	})

	def(env, "count", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("count", "1", len(args))
		}
		if _, ok := args[0].(runtime.Nil); ok {
			return runtime.Int(0), nil
		}
		if items, ok := runtime.Seq(args[0]); ok {
			return runtime.Int(len(items)), nil
		}
		return nil, typeError("count", "a list or vector", args[0])
	})

	def(env, "seq", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("seq", "1", len(args))
		}
		switch t := args[0].(type) {
		case runtime.Nil:
			return runtime.Nil{}, nil
		case runtime.Str:
			if len(t) == 0 {
				return runtime.Nil{}, nil
			}
			chars := make([]runtime.Value, 0, len(t))
			for _, r := range string(t) {
				chars = append(chars, runtime.Str(string(r)))
			}
			return runtime.NewList(chars...), nil
		default:
			items, ok := runtime.Seq(args[0])
			if !ok {
				return nil, typeError("seq", "a list, vector, or string", args[0])
			}
			if len(items) == 0 {
				return runtime.Nil{}, nil
			}
			return runtime.NewList(append([]runtime.Value(nil), items...)...), nil
		}
	})

	def(env, "conj", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) < 1 {
			return nil, arityError("conj", "at least 1", len(args))
		}
		switch t := args[0].(type) {
		case *runtime.List:
			out := make([]runtime.Value, 0, len(args)-1+len(t.Items))
			for i := len(args) - 1; i >= 1; i-- {
				out = append(out, args[i])
			}
			out = append(out, t.Items...)
			return runtime.NewList(out...), nil
		case *runtime.Vec:
			out := append([]runtime.Value(nil), t.Items...)
			out = append(out, args[1:]...)
			return runtime.NewVec(out...), nil
		default:
			return nil, typeError("conj", "a list or vector", args[0])
		}
	})
}
