package builtins

import (
	"strings"

	"github.com/cwbudde/golisp/internal/interp/runtime"
	"github.com/cwbudde/golisp/internal/reader"
	"github.com/cwbudde/golisp/pkg/printer"
)

func registerStrings(env *runtime.Environment, opts Options) {
	def(env, "str", func(args []runtime.Value) (runtime.Value, error) {
		var sb strings.Builder
		for _, a := range args {
			sb.WriteString(printer.PrintDisplay(a))
		}
		return runtime.Str(sb.String()), nil
	})

	def(env, "pr-str", func(args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = printer.PrintReadable(a)
		}
		return runtime.Str(strings.Join(parts, " ")), nil
	})

	def(env, "prn", func(args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = printer.PrintReadable(a)
		}
		line := strings.Join(parts, " ")
		if opts.Out != nil {
			opts.Out.WriteLine(line)
		}
		return runtime.Nil{}, nil
	})

	def(env, "println", func(args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = printer.PrintDisplay(a)
		}
		line := strings.Join(parts, " ")
		if opts.Out != nil {
			opts.Out.WriteLine(line)
		}
		return runtime.Nil{}, nil
	})

	def(env, "symbol", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("symbol", "1", len(args))
		}
		s, ok := args[0].(runtime.Str)
		if !ok {
			return nil, typeError("symbol", "a string", args[0])
		}
		return runtime.Sym(string(s)), nil
	})

	def(env, "keyword", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("keyword", "1", len(args))
		}
		switch t := args[0].(type) {
		case runtime.Kw:
			return t, nil
		case runtime.Str:
			return runtime.Kw(string(t)), nil
		default:
			return nil, typeError("keyword", "a string or keyword", args[0])
		}
	})

	def(env, "read-string", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("read-string", "1", len(args))
		}
		s, ok := args[0].(runtime.Str)
		if !ok {
			return nil, typeError("read-string", "a string", args[0])
		}
		v, err := reader.ReadForm(string(s))
		if err != nil {
			if reader.IsEOF(err) {
				return runtime.Nil{}, nil
			}
			return nil, typeError("read-string", "readable source text", args[0])
		}
		return v, nil
	})

	def(env, "slurp", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, arityError("slurp", "1", len(args))
		}
		path, ok := args[0].(runtime.Str)
		if !ok {
			return nil, typeError("slurp", "a string path", args[0])
		}
		if opts.Files == nil {
			return nil, typeError("slurp", "a host with file access", args[0])
		}
		contents, err := opts.Files.ReadFile(string(path))
		if err != nil {
			return nil, typeError("slurp", "a readable file", args[0])
		}
		return runtime.Str(contents), nil
	})
}
