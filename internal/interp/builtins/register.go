// Package builtins installs golisp's native (Go-implemented) functions
// into a root Environment: arithmetic, comparison, type predicates,
// sequence and hash-map operations, atoms, and the handful of
// evaluator-crossing builtins (apply, map, eval, swap!) that need access
// to an *evaluator.Evaluator to call back into Eval/Apply (spec §4.6,
// §1's "Core Builtins" load-bearing list).
package builtins

import (
	"strconv"

	"github.com/cwbudde/golisp/internal/interp/evaluator"
	"github.com/cwbudde/golisp/internal/interp/runtime"
)

// FileReader reads a file's contents as a string, backing `slurp` and
// (via the prelude) `load-file`.
type FileReader interface {
	ReadFile(path string) (string, error)
}

// Clock reports wall-clock milliseconds since epoch, backing `time-ms`.
type Clock interface {
	NowMillis() int64
}

// Writer emits a line of text to the host, backing `println`/`prn`. This
// is the same `write_line(text)` contract the REPL itself uses (spec §6).
type Writer interface {
	WriteLine(text string)
}

// Options configures which host collaborators and process-level values
// Register wires into the builtin set.
type Options struct {
	Argv         []string
	HostLanguage string
	Files        FileReader
	Clock        Clock
	Out          Writer
	// Quit is set to true by the `quit` builtin; the REPL loop observes it
	// between iterations (spec §5).
	Quit *bool
}

// Register installs every core builtin into env. ev is used by the
// builtins that must call back into the evaluator (`eval`, `apply`,
// `map`, `swap!`).
func Register(env *runtime.Environment, ev *evaluator.Evaluator, root *runtime.Environment, opts Options) {
	registerArithmetic(env)
	registerPredicates(env)
	registerSequences(env)
	registerHashMaps(env)
	registerAtoms(env, ev)
	registerStrings(env, opts)
	registerMeta(env)
	registerEvalApply(env, ev, root)
	registerHost(env, opts)
	registerInterop(env)

	argv := make([]runtime.Value, len(opts.Argv))
	for i, a := range opts.Argv {
		argv[i] = runtime.Str(a)
	}
	env.Set("*ARGV*", runtime.NewList(argv...))

	hostLang := opts.HostLanguage
	if hostLang == "" {
		hostLang = "Go"
	}
	env.Set("*host-language*", runtime.Str(hostLang))
}

func def(env *runtime.Environment, name string, fn runtime.Native) {
	env.Set(runtime.Sym(name), runtime.NewNative(name, fn))
}

func arityError(name string, expected string, got int) error {
	return evaluator.Throw(runtime.Str(name + ": expected " + expected + " argument(s), got " + strconv.Itoa(got)))
}

func typeError(name, expected string, got runtime.Value) error {
	return evaluator.Throw(runtime.Str(name + ": expected " + expected + ", got " + got.Type()))
}
