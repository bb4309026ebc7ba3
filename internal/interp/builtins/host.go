package builtins

import "github.com/cwbudde/golisp/internal/interp/runtime"

// registerHost installs the builtins that cross into host-process
// concerns: wall-clock time and REPL shutdown (spec §5, §6).
func registerHost(env *runtime.Environment, opts Options) {
	def(env, "time-ms", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 0 {
			return nil, arityError("time-ms", "0", len(args))
		}
		if opts.Clock == nil {
			return runtime.Int(0), nil
		}
		return runtime.Int(opts.Clock.NowMillis()), nil
	})

	def(env, "quit", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) > 1 {
			return nil, arityError("quit", "at most 1", len(args))
		}
		if opts.Quit != nil {
			*opts.Quit = true
		}
		return runtime.Nil{}, nil
	})
}
