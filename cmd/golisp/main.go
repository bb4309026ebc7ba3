// Command golisp is a read-eval-print interpreter for the golisp dialect:
// run a script file, evaluate an inline expression, or drop into an
// interactive REPL (spec §6 "Command line").
package main

import (
	"os"

	"github.com/cwbudde/golisp/cmd/golisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
