package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goodcodedev/langbase/descr"
	"github.com/goodcodedev/langbase/lang"
)

func mustBuildModel(t *testing.T, src string) *lang.Model {
	t.Helper()
	source, err := descr.Parse("test.lang", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m, err := lang.Build(source)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return m
}

func TestWriteDescriptionFlagsUnreachableKey(t *testing.T) {
	m := mustBuildModel(t, `
		ast reachable {
			(value:identifier)
		}

		ast orphan {
			(value:identifier)
		}

		start reachable
	`)

	var buf bytes.Buffer
	if err := writeDescription(&buf, m, "sample"); err != nil {
		t.Fatalf("writeDescription() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "reachable") {
		t.Fatalf("description missing reachable key:\n%s", out)
	}
	if !strings.Contains(out, "orphan") || !strings.Contains(out, "UNREACHABLE") {
		t.Fatalf("description should flag orphan as unreachable:\n%s", out)
	}
}

func TestBuildDescribeViewRecordsSubclassParent(t *testing.T) {
	m := mustBuildModel(t, `
		token plus : string "+"

		ast expr {
			binExpr(left:expr, plus, right:expr),
			leaf(identifier)
		}

		token identifier : string "[a-zA-Z]+"

		start expr
	`)

	view := buildDescribeView(m, "sample")
	var names []string
	for _, c := range view.Classes {
		names = append(names, c.Name)
	}
	if len(names) == 0 {
		t.Fatalf("expected at least one synthesized class")
	}

	found := false
	for _, c := range view.Classes {
		if c.Name == "binExpr" {
			found = true
			if c.Extends != "expr" {
				t.Fatalf("expected binExpr to extend expr, got %q", c.Extends)
			}
		}
	}
	if !found {
		t.Fatalf("expected binExpr in the class view")
	}
}
