// Command derivex is the reference CLI for the derivative-based DFA
// compiler and scanner: it exposes a single-pattern matcher and a
// multi-rule lexer driven by a lexcfg configuration file.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var logger = log.New(os.Stderr, "derivex: ", 0)

func main() {
	root := &cobra.Command{
		Use:           "derivex",
		Short:         "Compile and run derivative-based regular expression automata",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMatchCmd())
	root.AddCommand(newLexCmd())

	if err := root.Execute(); err != nil {
		logger.Fatal(err)
	}
}
