package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var evalExpr string

var rootCmd = &cobra.Command{
	Use:   "golisp [file] [args...]",
	Short: "golisp interpreter",
	Long: `golisp is a Lisp dialect in the style of the MAL (Make-A-Lisp) family:
lists, vectors, hash-maps, first-class closures, tail-call optimization,
quoting and quasiquotation, user-defined macros, mutable atoms, and
exception handling via try*/catch*.

With a file argument, golisp evaluates that file (equivalent to
(load-file "path")) and exits; any remaining arguments populate *ARGV*.
With -e, it evaluates the given expression instead. With neither, it
enters an interactive REPL.`,
	Version:      Version,
	Args:         cobra.ArbitraryArgs,
	RunE:         run,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading a file")
	rootCmd.AddCommand(versionCmd)
}
