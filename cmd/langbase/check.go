package main

import (
	"fmt"
	"os"

	"github.com/goodcodedev/langbase/validate"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Validate a language description without generating sources",
		Example: `  langbase check calc.lang`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, _, err := loadModel(args[0])
	if err != nil {
		return err
	}

	if err := validate.Lexicon(m); err != nil {
		return err
	}

	report := validate.Grammar(m)
	if !report.Empty() {
		return report.Error()
	}

	fmt.Fprintln(os.Stdout, "ok")
	return nil
}
