package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golisp/pkg/lisp"
	"github.com/spf13/cobra"
)

// run implements the root command's behavior per spec §6's CLI contract:
// a file argument (plus trailing *ARGV*), an inline `-e` expression, or a
// bare REPL.
func run(_ *cobra.Command, args []string) error {
	var argv []string
	if len(args) > 1 {
		argv = args[1:]
	}

	interp, err := lisp.New(lisp.WithArgv(argv))
	if err != nil {
		return fmt.Errorf("failed to initialize interpreter: %w", err)
	}

	switch {
	case evalExpr != "":
		return printResult(interp.EvalString(evalExpr))
	case len(args) >= 1:
		return printResult(interp.RunFile(args[0]))
	default:
		interp.REPL("user> ")
		return nil
	}
}

func printResult(result lisp.Result, err error) error {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if !result.Success() {
		fmt.Fprintln(os.Stderr, result.String())
		return fmt.Errorf("unhandled exception")
	}
	return nil
}
