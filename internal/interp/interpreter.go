// Package interp wires the reader, evaluator, and core builtins into one
// Runtime: a root Environment, the builtin installer, and the prelude
// bootstrap (spec §5 "process-wide state is one Runtime holding the root
// Env ... Initialization installs all core builtins, then evaluates the
// prelude").
package interp

import (
	goerrors "errors"

	golisperrors "github.com/cwbudde/golisp/internal/errors"
	"github.com/cwbudde/golisp/internal/interp/builtins"
	"github.com/cwbudde/golisp/internal/interp/evaluator"
	"github.com/cwbudde/golisp/internal/interp/runtime"
	"github.com/cwbudde/golisp/internal/lexer"
	"github.com/cwbudde/golisp/internal/reader"
	"github.com/cwbudde/golisp/pkg/token"
)

// Options configures a Runtime's host collaborators: argv, the host
// language identifier exposed as `*host-language*`, file/clock/output
// callbacks, and evaluator tuning knobs.
type Options struct {
	Argv         []string
	HostLanguage string
	Files        builtins.FileReader
	Clock        builtins.Clock
	Out          builtins.Writer
	EvalConfig   *evaluator.Config
}

// Runtime is the process-wide interpreter state: the root Environment, the
// Evaluator, and the run flag `quit` observes (spec §5).
type Runtime struct {
	Root *runtime.Environment
	Eval *evaluator.Evaluator
	quit bool
}

// New builds a Runtime with every core builtin installed and the prelude
// evaluated, ready to read and evaluate further forms.
func New(opts Options) (*Runtime, error) {
	root := runtime.NewEnvironment()
	ev := evaluator.New(opts.EvalConfig)

	rt := &Runtime{Root: root, Eval: ev}

	builtins.Register(root, ev, root, builtins.Options{
		Argv:         opts.Argv,
		HostLanguage: opts.HostLanguage,
		Files:        opts.Files,
		Clock:        opts.Clock,
		Out:          opts.Out,
		Quit:         &rt.quit,
	})

	if err := rt.bootstrap(); err != nil {
		return nil, err
	}
	return rt, nil
}

// Quit reports whether the `quit` builtin has been called.
func (rt *Runtime) Quit() bool {
	return rt.quit
}

// EvalSource reads every top-level form out of source and evaluates each in
// the root environment in turn, returning the last form's value. filename
// is used only for error messages (pass "" or "<eval>" for inline code).
func (rt *Runtime) EvalSource(source, filename string) (runtime.Value, error) {
	r := reader.New(source)
	var last runtime.Value = runtime.Nil{}
	for {
		form, err := r.Form()
		if err != nil {
			if reader.IsEOF(err) {
				return last, nil
			}
			return nil, evaluator.Throw(runtime.Str(readerErrorText(err, source, filename)))
		}
		last, err = rt.Eval.Eval(form, rt.Root)
		if err != nil {
			return nil, err
		}
	}
}

// EvalFile reads every top-level form out of source up front, before
// evaluating any of them: a syntax error anywhere in the file is reported
// via golisperrors.FormatErrors without partially executing the forms that
// precede it, unlike EvalSource's interleaved read-then-eval (appropriate
// for a REPL, where each line's side effects should land immediately).
// filename is used only for error messages.
func (rt *Runtime) EvalFile(source, filename string) (runtime.Value, error) {
	forms, err := reader.ReadAll(source)
	if err != nil {
		return nil, evaluator.Throw(runtime.Str(readerErrorText(err, source, filename)))
	}

	var last runtime.Value = runtime.Nil{}
	for _, form := range forms {
		var evalErr error
		last, evalErr = rt.Eval.Eval(form, rt.Root)
		if evalErr != nil {
			return nil, evalErr
		}
	}
	return last, nil
}

// readerErrorText formats a reader/lexer failure as the descriptive string
// a thrown Exception carries (spec §7 "Reader errors: Str describing
// unmatched/unbalanced delimiter or bad escape"), via FormatErrors so a
// caller with more than one collected ReaderError (as ReadAll could report
// in the future, should the lexer grow resynchronization) shares the same
// rendering as today's single-error case.
func readerErrorText(err error, source, filename string) string {
	var pos token.Position
	var readErr *reader.Error
	var lexErr *lexer.Error
	switch {
	case goerrors.As(err, &readErr):
		pos = readErr.Pos
	case goerrors.As(err, &lexErr):
		pos = lexErr.Pos
	default:
		return err.Error()
	}
	rerr := golisperrors.NewReaderError(pos, err.Error(), source, filename)
	return golisperrors.FormatErrors([]*golisperrors.ReaderError{rerr}, false)
}

const preludeSource = `
(def! not (fn* (x) (if x false true)))
(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))
(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))
`

// bootstrap evaluates the bit-exact prelude program (spec §6) that defines
// `not`, `load-file`, and `cond` in terms of already-installed builtins.
func (rt *Runtime) bootstrap() error {
	_, err := rt.EvalSource(preludeSource, "<prelude>")
	return err
}
