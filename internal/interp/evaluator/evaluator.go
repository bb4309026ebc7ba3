// Package evaluator implements golisp's evaluator: a trampoline loop that
// mutates its own (ast, env) pair to implement tail-call optimization
// (spec §4.5), special-form dispatch, macro expansion, and quasiquotation
// lowering.
package evaluator

import (
	"github.com/cwbudde/golisp/internal/interp/runtime"
)

// Config holds evaluator-wide tuning knobs, mirroring the teacher's own
// evaluator Config (max recursion depth, execution tracing).
type Config struct {
	// MaxRecursionDepth bounds genuine (non-tail) Go-stack recursion, e.g.
	// evaluating a deeply nested argument expression. Tail calls do not
	// count against this limit — that is the entire point of the
	// trampoline (spec §8 "TCO" property).
	MaxRecursionDepth int

	// Trace, when set, logs each trampoline iteration's ast via Tracef.
	Trace bool

	// Tracef receives one trace line per trampoline iteration when Trace
	// is set. Defaults to a no-op.
	Tracef func(format string, args ...any)
}

// DefaultConfig returns the default evaluator configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxRecursionDepth: 4096,
		Tracef:            func(string, ...any) {},
	}
}

// ThrownError is the single error type the evaluator and builtins use to
// propagate a raised value. It implements spec §9's suggested redesign of
// the exception protocol: "a result type surfaced through the evaluator;
// catch* observes the error case" — golisp's Eval returns (Value, error)
// directly instead of threading a global pending-flag/payload pair, which
// removes global state and makes the evaluator trivially reentrant.
type ThrownError struct {
	Payload runtime.Value
}

func (e *ThrownError) Error() string {
	return "uncaught exception"
}

// Throw wraps payload as a ThrownError for propagation by try*/catch*.
func Throw(payload runtime.Value) error {
	return &ThrownError{Payload: payload}
}

// AsThrown converts any error into a ThrownError: a *ThrownError passes
// through unchanged (the payload the user actually threw), anything else
// (a lookup error, an arity error, a Go error from a builtin) is wrapped
// with its message as a Str payload, matching spec §7's payload
// conventions for reader/lookup/arity/type errors.
func AsThrown(err error) *ThrownError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*ThrownError); ok {
		return te
	}
	return &ThrownError{Payload: runtime.Str(err.Error())}
}

// Evaluator walks golisp Values, evaluating special forms and function
// applications against an Environment chain.
type Evaluator struct {
	cfg   *Config
	depth int
}

// New creates an Evaluator with the given configuration. A nil cfg uses
// DefaultConfig.
func New(cfg *Config) *Evaluator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Tracef == nil {
		cfg.Tracef = func(string, ...any) {}
	}
	return &Evaluator{cfg: cfg}
}

// Eval evaluates ast in env, trampolining through tail positions rather
// than recursing for them (spec §4.5, §9 "Tail-call optimization").
func (e *Evaluator) Eval(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	for {
		if e.cfg.Trace {
			e.cfg.Tracef("eval: %v", ast)
		}

		lst, isList := ast.(*runtime.List)
		if !isList {
			return e.evalAtomic(ast, env)
		}

		expanded, err := e.macroExpandFull(ast, env)
		if err != nil {
			return nil, err
		}
		if expanded != ast {
			ast = expanded
			lst, isList = ast.(*runtime.List)
			if !isList {
				return e.evalAtomic(ast, env)
			}
		}

		if len(lst.Items) == 0 {
			return lst, nil
		}

		if headSym, ok := lst.Items[0].(runtime.Sym); ok {
			switch headSym {
			case "def!":
				return e.evalDef(lst, env)
			case "let*":
				ast, env, err = e.evalLetStar(lst, env)
				if err != nil {
					return nil, err
				}
				continue
			case "do":
				ast, err = e.evalDo(lst, env)
				if err != nil {
					return nil, err
				}
				continue
			case "if":
				next, hasNext, err := e.evalIf(lst, env)
				if err != nil {
					return nil, err
				}
				if !hasNext {
					return runtime.Nil{}, nil
				}
				ast = next
				continue
			case "fn*":
				return e.evalFnStar(lst, env)
			case "quote":
				if len(lst.Items) != 2 {
					return nil, Throw(runtime.Str("quote: expected 1 argument"))
				}
				return lst.Items[1], nil
			case "quasiquote":
				if len(lst.Items) != 2 {
					return nil, Throw(runtime.Str("quasiquote: expected 1 argument"))
				}
				ast = quasiquote(lst.Items[1])
				continue
			case "quasiquoteexpand":
				if len(lst.Items) != 2 {
					return nil, Throw(runtime.Str("quasiquoteexpand: expected 1 argument"))
				}
				return quasiquote(lst.Items[1]), nil
			case "macroexpand":
				if len(lst.Items) != 2 {
					return nil, Throw(runtime.Str("macroexpand: expected 1 argument"))
				}
				return e.macroExpandFull(lst.Items[1], env)
			case "try*":
				result, next, nextEnv, isTail, err := e.evalTryStar(lst, env)
				if err != nil {
					return nil, err
				}
				if !isTail {
					return result, nil
				}
				ast, env = next, nextEnv
				continue
			case "defmacro!":
				return e.evalDefMacro(lst, env)
			}
		}

		fnVal, args, err := e.evalCall(lst, env)
		if err != nil {
			return nil, err
		}

		fn, ok := fnVal.(*runtime.Fn)
		if !ok {
			return nil, describeApplyNonFunction(lst.Items[0], fnVal)
		}

		if fn.Native != nil {
			v, err := e.callNative(fn, args)
			if err != nil {
				return nil, err
			}
			return v, nil
		}

		childEnv := runtime.NewEnclosedEnvironment(fn.Env)
		if bindErr := childEnv.Bind(fn.Params, fn.Variadic, fn.IsVariadic, args); bindErr != nil {
			return nil, AsThrown(bindErr)
		}
		ast = fn.Body
		env = childEnv
	}
}

// evalAtomic evaluates a non-List form: symbol lookup, or element-wise
// evaluation for Vec/Map, or self-evaluation for everything else (spec
// §4.5 "Atomic evaluation").
func (e *Evaluator) evalAtomic(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	switch t := ast.(type) {
	case runtime.Sym:
		v, err := env.Get(t)
		if err != nil {
			return nil, AsThrown(err)
		}
		return v, nil
	case *runtime.Vec:
		out := make([]runtime.Value, len(t.Items))
		for i, item := range t.Items {
			v, err := e.evalGuarded(item, env)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &runtime.Vec{Items: out, Meta: runtime.Nil{}}, nil
	case *runtime.Map:
		out := runtime.NewMap()
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			v, err := e.evalGuarded(val, env)
			if err != nil {
				return nil, err
			}
			out.Set(k, v)
		}
		return out, nil
	default:
		return ast, nil
	}
}

// evalGuarded is Eval with the non-tail recursion depth guard applied; it
// is what every non-tail sub-evaluation (arguments, let* bindings, map/vec
// elements, cond expressions) goes through instead of calling Eval
// directly, so genuine (non-tail) recursion is bounded per Config.
func (e *Evaluator) evalGuarded(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.cfg.MaxRecursionDepth {
		return nil, Throw(runtime.Str("maximum recursion depth exceeded"))
	}
	return e.Eval(ast, env)
}

func (e *Evaluator) evalCall(lst *runtime.List, env *runtime.Environment) (runtime.Value, []runtime.Value, error) {
	fnVal, err := e.evalGuarded(lst.Items[0], env)
	if err != nil {
		return nil, nil, err
	}
	args := make([]runtime.Value, len(lst.Items)-1)
	for i, item := range lst.Items[1:] {
		v, err := e.evalGuarded(item, env)
		if err != nil {
			return nil, nil, err
		}
		args[i] = v
	}
	return fnVal, args, nil
}

func (e *Evaluator) callNative(fn *runtime.Fn, args []runtime.Value) (runtime.Value, error) {
	v, err := fn.Native(args)
	if err != nil {
		return nil, AsThrown(err)
	}
	return v, nil
}

func describeApplyNonFunction(head runtime.Value, got runtime.Value) error {
	if sym, ok := head.(runtime.Sym); ok {
		return Throw(runtime.Str("cannot apply non-function value of type " + got.Type() + ", bound to '" + string(sym) + "'"))
	}
	return Throw(runtime.Str("cannot apply non-function value of type " + got.Type()))
}

// Apply invokes fn with args, fully resolving any tail calls (used by
// builtins like apply/map/swap! that need a final value rather than a
// trampoline continuation).
func (e *Evaluator) Apply(fn *runtime.Fn, args []runtime.Value) (runtime.Value, error) {
	if fn.Native != nil {
		return e.callNative(fn, args)
	}
	childEnv := runtime.NewEnclosedEnvironment(fn.Env)
	if err := childEnv.Bind(fn.Params, fn.Variadic, fn.IsVariadic, args); err != nil {
		return nil, AsThrown(err)
	}
	return e.evalGuarded(fn.Body, childEnv)
}
