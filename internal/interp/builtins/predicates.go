package builtins

import "github.com/cwbudde/golisp/internal/interp/runtime"

func registerPredicates(env *runtime.Environment) {
	def(env, "type", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("type", "1", len(args))
		}
		return runtime.Str(args[0].Type()), nil
	})

	pred := func(name string, f func(runtime.Value) bool) {
		def(env, name, func(args []runtime.Value) (runtime.Value, error) {
			if len(args) != 1 {
				return nil, arityError(name, "1", len(args))
			}
			return runtime.Bool(f(args[0])), nil
		})
	}

	pred("nil?", func(v runtime.Value) bool { _, ok := v.(runtime.Nil); return ok })
	pred("true?", func(v runtime.Value) bool { b, ok := v.(runtime.Bool); return ok && bool(b) })
	pred("false?", func(v runtime.Value) bool { b, ok := v.(runtime.Bool); return ok && !bool(b) })
	pred("symbol?", func(v runtime.Value) bool { _, ok := v.(runtime.Sym); return ok })
	pred("string?", func(v runtime.Value) bool { _, ok := v.(runtime.Str); return ok })
	pred("number?", func(v runtime.Value) bool { _, ok := v.(runtime.Int); return ok })
	pred("keyword?", func(v runtime.Value) bool { _, ok := v.(runtime.Kw); return ok })
	pred("list?", func(v runtime.Value) bool { _, ok := v.(*runtime.List); return ok })
	pred("vector?", func(v runtime.Value) bool { _, ok := v.(*runtime.Vec); return ok })
	pred("sequential?", func(v runtime.Value) bool { _, ok := runtime.Seq(v); return ok })
	pred("map?", func(v runtime.Value) bool { _, ok := v.(*runtime.Map); return ok })
	pred("fn?", func(v runtime.Value) bool { f, ok := v.(*runtime.Fn); return ok && !f.IsMacro })
	pred("macro?", func(v runtime.Value) bool { f, ok := v.(*runtime.Fn); return ok && f.IsMacro })
	pred("atom?", func(v runtime.Value) bool { _, ok := v.(*runtime.Atom); return ok })

	pred("empty?", func(v runtime.Value) bool {
		if items, ok := runtime.Seq(v); ok {
			return len(items) == 0
		}
		if s, ok := v.(runtime.Str); ok {
			return len(s) == 0
		}
		return false
	})
}
