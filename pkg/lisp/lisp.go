// Package lisp is golisp's embeddable facade: construct an Interpreter,
// evaluate source strings or files, or drive an interactive REPL, without
// the caller needing to reach into internal/interp directly.
package lisp

import (
	"fmt"
	"strings"

	"github.com/cwbudde/golisp/internal/interp"
	"github.com/cwbudde/golisp/internal/interp/evaluator"
	"github.com/cwbudde/golisp/internal/interp/runtime"
	"github.com/cwbudde/golisp/internal/lexer"
	"github.com/cwbudde/golisp/pkg/platform"
	"github.com/cwbudde/golisp/pkg/platform/native"
	"github.com/cwbudde/golisp/pkg/printer"
)

// config accumulates Option values before an Interpreter is built.
type config struct {
	argv              []string
	hostLanguage      string
	platform          platform.Platform
	maxRecursionDepth int
}

// Option configures an Interpreter at construction time.
type Option func(*config)

// WithArgv sets the strings exposed to scripts as `*ARGV*`.
func WithArgv(argv []string) Option {
	return func(c *config) { c.argv = argv }
}

// WithHostLanguage sets the string exposed as `*host-language*`.
func WithHostLanguage(name string) Option {
	return func(c *config) { c.hostLanguage = name }
}

// WithPlatform overrides the host collaborators (console/filesystem/clock);
// defaults to native.NewNativePlatform().
func WithPlatform(p platform.Platform) Option {
	return func(c *config) { c.platform = p }
}

// WithMaxRecursionDepth overrides the evaluator's non-tail recursion guard
// (spec §4.5 / §9 "Tail-call optimization").
func WithMaxRecursionDepth(n int) Option {
	return func(c *config) { c.maxRecursionDepth = n }
}

// Interpreter is an embeddable golisp runtime.
type Interpreter struct {
	rt   *interp.Runtime
	plat platform.Platform
}

// New builds an Interpreter with every core builtin installed and the
// prelude evaluated.
func New(opts ...Option) (*Interpreter, error) {
	cfg := &config{hostLanguage: "Go"}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.platform == nil {
		cfg.platform = native.NewNativePlatform()
	}

	evalConfig := evaluator.DefaultConfig()
	if cfg.maxRecursionDepth > 0 {
		evalConfig.MaxRecursionDepth = cfg.maxRecursionDepth
	}

	rt, err := interp.New(interp.Options{
		Argv:         cfg.argv,
		HostLanguage: cfg.hostLanguage,
		Files:        fileReaderAdapter{cfg.platform},
		Clock:        clockAdapter{cfg.platform},
		Out:          writerAdapter{cfg.platform},
		EvalConfig:   evalConfig,
	})
	if err != nil {
		return nil, err
	}
	return &Interpreter{rt: rt, plat: cfg.platform}, nil
}

// Result is the outcome of evaluating a source string or file: the last
// form's value, plus whether an unhandled exception propagated out.
type Result struct {
	Value     runtime.Value
	Exception runtime.Value
}

// Success reports whether evaluation completed without an unhandled
// exception.
func (r Result) Success() bool {
	return r.Exception == nil
}

// String renders the result's value (or exception payload) in readable
// form.
func (r Result) String() string {
	if r.Exception != nil {
		return "Exception: " + printer.PrintReadable(r.Exception)
	}
	return printer.PrintReadable(r.Value)
}

// EvalString evaluates every top-level form in source, in the root
// environment, returning the last form's value.
func (i *Interpreter) EvalString(source string) (Result, error) {
	v, err := i.rt.EvalSource(source, "<eval>")
	if err != nil {
		return Result{Exception: evaluator.AsThrown(err).Payload}, nil
	}
	return Result{Value: v}, nil
}

// RunFile reads path via the configured Platform's filesystem and
// evaluates it, equivalent to `(load-file path)` at the top level (spec
// §6 "the path to a source file to evaluate"). Unlike EvalString, the
// whole file is read into forms before any of them run, so a syntax error
// anywhere in the file is reported without partially executing it.
func (i *Interpreter) RunFile(path string) (Result, error) {
	content, err := i.plat.FS().ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	v, err := i.rt.EvalFile(content, path)
	if err != nil {
		return Result{Exception: evaluator.AsThrown(err).Payload}, nil
	}
	return Result{Value: v}, nil
}

// REPL drives the `read_line -> READ -> EVAL -> PRINT -> write_line`
// pipeline (spec §2) until EOF or `(quit)`. A form spanning more than one
// line keeps accumulating across read_line calls — checked with
// lexer.Balanced — instead of raising a premature unbalanced-delimiter
// error on the first line alone.
func (i *Interpreter) REPL(prompt string) {
	console := i.plat.Console()
	var pending strings.Builder
	for !i.rt.Quit() {
		line, ok := console.ReadLine(prompt)
		if !ok {
			return
		}
		if pending.Len() > 0 {
			pending.WriteString("\n")
		}
		pending.WriteString(line)

		if !lexer.Balanced(pending.String()) {
			continue
		}

		source := pending.String()
		pending.Reset()

		result, err := i.EvalString(source)
		if err != nil {
			console.WriteLine(fmt.Sprintf("Error: %v", err))
			continue
		}
		console.WriteLine(result.String())
	}
}

type fileReaderAdapter struct{ p platform.Platform }

func (a fileReaderAdapter) ReadFile(path string) (string, error) {
	return a.p.FS().ReadFile(path)
}

type clockAdapter struct{ p platform.Platform }

func (a clockAdapter) NowMillis() int64 {
	return a.p.Now().UnixMilli()
}

type writerAdapter struct{ p platform.Platform }

func (a writerAdapter) WriteLine(text string) {
	a.p.Console().WriteLine(text)
}
