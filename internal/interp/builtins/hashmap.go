package builtins

import "github.com/cwbudde/golisp/internal/interp/runtime"

func registerHashMaps(env *runtime.Environment) {
	def(env, "hash-map", func(args []runtime.Value) (runtime.Value, error) {
		if len(args)%2 != 0 {
			return nil, arityError("hash-map", "an even number of", len(args))
		}
		m := runtime.NewMap()
		for i := 0; i < len(args); i += 2 {
			key, ok := runtime.KeyOf(args[i])
			if !ok {
				return nil, typeError("hash-map", "a string or keyword key", args[i])
			}
			m.Set(key, args[i+1])
		}
		return m, nil
	})

	def(env, "assoc", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) < 1 || len(args)%2 != 1 {
			return nil, arityError("assoc", "a map followed by an even number of", len(args))
		}
		src, ok := args[0].(*runtime.Map)
		if !ok {
			return nil, typeError("assoc", "a map", args[0])
		}
		m := src.Clone()
		for i := 1; i < len(args); i += 2 {
			key, ok := runtime.KeyOf(args[i])
			if !ok {
				return nil, typeError("assoc", "a string or keyword key", args[i])
			}
			m.Set(key, args[i+1])
		}
		return m, nil
	})

	def(env, "dissoc", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) < 1 {
			return nil, arityError("dissoc", "at least 1", len(args))
		}
		src, ok := args[0].(*runtime.Map)
		if !ok {
			return nil, typeError("dissoc", "a map", args[0])
		}
		m := src.Clone()
		for _, k := range args[1:] {
			key, ok := runtime.KeyOf(k)
			if !ok {
				return nil, typeError("dissoc", "a string or keyword key", k)
			}
			m.Delete(key)
		}
		return m, nil
	})

	def(env, "get", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, arityError("get", "2", len(args))
		}
		if _, ok := args[0].(runtime.Nil); ok {
			return runtime.Nil{}, nil
		}
		m, ok := args[0].(*runtime.Map)
		if !ok {
			return nil, typeError("get", "a map", args[0])
		}
		key, ok2 := runtime.KeyOf(args[1])
		if !ok2 {
			return nil, typeError("get", "a string or keyword key", args[1])
		}
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		return runtime.Nil{}, nil
	})

	def(env, "contains?", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, arityError("contains?", "2", len(args))
		}
		m, ok := args[0].(*runtime.Map)
		if !ok {
			return nil, typeError("contains?", "a map", args[0])
		}
		key, ok2 := runtime.KeyOf(args[1])
		if !ok2 {
			return nil, typeError("contains?", "a string or keyword key", args[1])
		}
		_, found := m.Get(key)
		return runtime.Bool(found), nil
	})

	def(env, "keys", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("keys", "1", len(args))
		}
		m, ok := args[0].(*runtime.Map)
		if !ok {
			return nil, typeError("keys", "a map", args[0])
		}
		out := make([]runtime.Value, 0, m.Len())
		for _, k := range m.Keys() {
			out = append(out, k.Value())
		}
		return runtime.NewList(out...), nil
	})

	def(env, "vals", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("vals", "1", len(args))
		}
		m, ok := args[0].(*runtime.Map)
		if !ok {
			return nil, typeError("vals", "a map", args[0])
		}
		out := make([]runtime.Value, 0, m.Len())
		for _, k := range m.Keys() {
			v, _ := m.Get(k)
			out = append(out, v)
		}
		return runtime.NewList(out...), nil
	})
}
