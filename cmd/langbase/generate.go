package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goodcodedev/langbase/emit"
	"github.com/goodcodedev/langbase/validate"
	"github.com/spf13/cobra"
)

var generateFlags = struct {
	out            *string
	flex           *string
	bison          *string
	skipGenerators *bool
	skipValidate   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate a lexer, grammar, ast classes and printer from a language description",
		Example: `  langbase generate calc.lang`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.out = cmd.Flags().StringP("out", "o", "", "output directory (default: the description file's directory)")
	generateFlags.flex = cmd.Flags().String("flex", "", "flex binary to invoke (default: flex on $PATH)")
	generateFlags.bison = cmd.Flags().String("bison", "", "bison binary to invoke (default: bison on $PATH)")
	generateFlags.skipGenerators = cmd.Flags().Bool("skip-generators", false, "render the .l/.y/.hpp sources without invoking flex/bison")
	generateFlags.skipValidate = cmd.Flags().Bool("skip-validate", false, "skip the lexical-spec and reachability pre-flight checks")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := args[0]
	m, langKey, err := loadModel(path)
	if err != nil {
		return err
	}

	if !*generateFlags.skipValidate {
		if err := validate.Lexicon(m); err != nil {
			return err
		}
		if report := validate.Grammar(m); !report.Empty() {
			return report.Error()
		}
	}

	out := *generateFlags.out
	if out == "" {
		out = filepath.Dir(path)
	}

	res, err := emit.Emit(m, out, langKey)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", res.LexFile)
	fmt.Fprintf(os.Stdout, "wrote %s\n", res.GrammarFile)
	fmt.Fprintf(os.Stdout, "wrote %s\n", res.ClassHeader)
	fmt.Fprintf(os.Stdout, "wrote %s\n", res.VisitorFile)
	fmt.Fprintf(os.Stdout, "wrote %s\n", res.PrinterFile)

	if *generateFlags.skipGenerators {
		return nil
	}

	pair := emit.GeneratorPair{Flex: *generateFlags.flex, Bison: *generateFlags.bison}
	if err := emit.InvokeGenerators(filepath.Join(out, "gen"), langKey, pair); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "flex/bison succeeded")
	return nil
}
