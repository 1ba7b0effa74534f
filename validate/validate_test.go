package validate_test

import (
	"strings"
	"testing"

	"github.com/goodcodedev/langbase/descr"
	"github.com/goodcodedev/langbase/lang"
	"github.com/goodcodedev/langbase/validate"
)

func build(t *testing.T, src string) *lang.Model {
	t.Helper()
	s, err := descr.Parse("test.lang", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m, err := lang.Build(s)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return m
}

func TestLexiconAcceptsValidRegexes(t *testing.T) {
	m := build(t, `
		token plus : string "[+]"

		ast thing {
			(value:identifier)
		}

		start thing
	`)
	if err := validate.Lexicon(m); err != nil {
		t.Fatalf("Lexicon() error = %v", err)
	}
}

func TestGrammarReportsUnreachableKey(t *testing.T) {
	caption := "a declared ast key never referenced from start is unreachable"
	m := build(t, `
		ast reachable {
			(value:identifier)
		}

		ast orphan {
			(value:identifier)
		}

		start reachable
	`)
	report := validate.Grammar(m)
	if report.Empty() {
		t.Fatalf("%s: expected orphan to be reported unreachable", caption)
	}
	found := false
	for _, k := range report.Keys {
		if k == "orphan" {
			found = true
		}
	}
	if !found {
		t.Fatalf("%s: expected %q in unreachable keys, got %v", caption, "orphan", report.Keys)
	}
	for _, k := range report.Keys {
		if k == "reachable" {
			t.Fatalf("%s: reachable must not be reported unreachable", caption)
		}
	}
}

func TestGrammarAllReachable(t *testing.T) {
	caption := "every declared key transitively reachable from start reports no findings"
	m := build(t, `
		token comma ","

		ast leaf {
			(value:identifier)
		}

		list items leaf comma

		start items
	`)
	report := validate.Grammar(m)
	if !report.Empty() {
		t.Fatalf("%s: expected no unreachable keys/tokens, got keys=%v tokens=%v", caption, report.Keys, report.Tokens)
	}
}
