package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goodcodedev/langbase/lang"
)

// Result holds the five rendered artifact paths a successful Emit
// produces, ready for InvokeGenerators or for the caller to pass along.
type Result struct {
	LexFile     string
	GrammarFile string
	ClassHeader string
	VisitorFile string
	PrinterFile string
}

// Emit renders m's five generated sources into "<dir>/gen" and writes
// each to disk, mirroring genFiles' write phase: create the output
// directory, then one file per artifact. It does not invoke flex/bison
// itself; call InvokeGenerators afterward for that.
func Emit(m *lang.Model, dir, langKey string) (*Result, error) {
	genDir := filepath.Join(dir, "gen")
	if err := os.MkdirAll(genDir, 0o755); err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}

	grammarSrc, err := Grammar(m, langKey)
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}
	classHeaderSrc, err := ClassHeader(m, langKey)
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}

	res := &Result{
		LexFile:     filepath.Join(genDir, langKey+".l"),
		GrammarFile: filepath.Join(genDir, langKey+".y"),
		ClassHeader: filepath.Join(genDir, langKey+".hpp"),
		VisitorFile: filepath.Join(genDir, langKey+"Visitor.hpp"),
		PrinterFile: filepath.Join(genDir, langKey+"ToSource.hpp"),
	}

	writes := []struct {
		path, content string
	}{
		{res.LexFile, Lexer(m, langKey)},
		{res.GrammarFile, grammarSrc},
		{res.ClassHeader, classHeaderSrc},
		{res.VisitorFile, Visitor(m, langKey)},
		{res.PrinterFile, Printer(m, langKey)},
	}
	for _, w := range writes {
		if err := os.WriteFile(w.path, []byte(w.content), 0o644); err != nil {
			return nil, fmt.Errorf("emit: write %s: %w", w.path, err)
		}
	}
	return res, nil
}
