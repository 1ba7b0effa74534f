// Package validate runs pre-flight checks over a built language model
// before its sources are handed to the external lexer/parser
// generators: a lexical-spec compile check and a grammar-reachability
// sweep, so a malformed description fails with a message pointing at
// the model rather than a cryptic flex/bison error.
package validate

import (
	"fmt"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mlspec "github.com/nihei9/maleeni/spec"

	"github.com/goodcodedev/langbase/lang"
)

// Lexicon compiles every registered token's regex through maleeni's
// lexical-spec compiler, the same engine the teacher grammar's own
// tokenizer front end used, repurposed here to pre-validate the
// *emitted* language's lexical spec rather than the description
// language's own.
func Lexicon(m *lang.Model) error {
	entries := make([]*mlspec.LexEntry, 0, len(m.Tokens))
	for key, td := range m.Tokens {
		if key == "WS" {
			continue
		}
		entries = append(entries, &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(key),
			Pattern: mlspec.LexPattern(td.Regex),
		})
	}

	_, _, cErrs := mlcompiler.Compile(&mlspec.LexSpec{Entries: entries}, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if len(cErrs) > 0 {
		var b strings.Builder
		writeCompileError(&b, cErrs[0])
		for _, cerr := range cErrs[1:] {
			fmt.Fprintf(&b, "\n")
			writeCompileError(&b, cerr)
		}
		return fmt.Errorf("%s", b.String())
	}
	return nil
}

func writeCompileError(w *strings.Builder, cErr *mlcompiler.CompileError) {
	if cErr.Fragment {
		fmt.Fprintf(w, "fragment ")
	}
	fmt.Fprintf(w, "%v: %v", cErr.Kind, cErr.Cause)
	if cErr.Detail != "" {
		fmt.Fprintf(w, ": %v", cErr.Detail)
	}
}
