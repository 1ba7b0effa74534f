package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "langbase",
	Short: "Build a parser and AST toolkit from a language description",
	Long: `langbase reads a .lang description and generates:
- a flex lexer spec
- a bison grammar
- an ast class header with a visitor base class
- a source-reconstruction printer
then, unless told otherwise, invokes flex and bison over the result.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
