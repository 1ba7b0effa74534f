package descr

import (
	"strings"
	"testing"
)

func TestParseTokenDecl(t *testing.T) {
	tests := []struct {
		caption    string
		src        string
		identifier string
		typ        TokType
		regex      string
	}{
		{
			caption:    "token with explicit string type",
			src:        `token comma : string ","`,
			identifier: "comma",
			typ:        TokString,
			regex:      ",",
		},
		{
			caption:    "token without explicit type",
			src:        `token ws "[ \t]+"`,
			identifier: "ws",
			typ:        TokNone,
			regex:      `[ \t]+`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			src, err := Parse(tt.caption, strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(src.Decls) != 1 || src.Decls[0].Token == nil {
				t.Fatalf("expected a single token decl, got: %+v", src.Decls)
			}
			tok := src.Decls[0].Token
			if tok.Identifier != tt.identifier {
				t.Fatalf("identifier: want %v, got %v", tt.identifier, tok.Identifier)
			}
			if tok.Type != tt.typ {
				t.Fatalf("type: want %v, got %v", tt.typ, tok.Type)
			}
			if tok.Regex != tt.regex {
				t.Fatalf("regex: want %q, got %q", tt.regex, tok.Regex)
			}
		})
	}
}

func TestParseAstDecl(t *testing.T) {
	src, err := Parse("ast", strings.NewReader(`
		ast expr {
			Binop(left: expr, op, right: expr),
			Lit(value)
		}
	`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(src.Decls) != 1 || src.Decls[0].Ast == nil {
		t.Fatalf("expected a single ast decl, got: %+v", src.Decls)
	}
	ast := src.Decls[0].Ast
	if ast.Type.Identifier != "expr" {
		t.Fatalf("unexpected grammar key: %v", ast.Type.Identifier)
	}
	if len(ast.Defs) != 2 {
		t.Fatalf("expected 2 alternatives, got %v", len(ast.Defs))
	}
	binop := ast.Defs[0]
	if binop.Identifier != "Binop" || len(binop.Parts) != 3 {
		t.Fatalf("unexpected binop def: %+v", binop)
	}
	if binop.Parts[0].Identifier != "expr" || binop.Parts[0].Alias != "left" {
		t.Fatalf("unexpected first part: %+v", binop.Parts[0])
	}
}

func TestParseListDeclShorthand(t *testing.T) {
	src, err := Parse("list", strings.NewReader(`list stmts(Stmts) stmt semicolon`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := src.Decls[0].List
	if list.Type.Identifier != "stmts" || list.Type.Alias != "Stmts" {
		t.Fatalf("unexpected type decl: %+v", list.Type)
	}
	if list.AstKey != "stmt" || list.TokenSep != "semicolon" {
		t.Fatalf("unexpected shorthand refs: astKey=%v tokenSep=%v", list.AstKey, list.TokenSep)
	}
	if len(list.Defs) != 0 {
		t.Fatalf("expected no expanded defs, got %v", len(list.Defs))
	}
}

func TestParseListDeclExpanded(t *testing.T) {
	src, err := Parse("list", strings.NewReader(`
		list stmts {
			sep: Assign(identifier, equal, expr) semicolon
		}
	`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := src.Decls[0].List
	if len(list.Defs) != 1 {
		t.Fatalf("expected 1 expanded def, got %v", len(list.Defs))
	}
	def := list.Defs[0]
	if def.SepBefore != "sep" {
		t.Fatalf("unexpected sepBefore: %v", def.SepBefore)
	}
	if def.Identifier != "Assign" {
		t.Fatalf("unexpected identifier: %v", def.Identifier)
	}
	if def.SepAfter != "semicolon" {
		t.Fatalf("unexpected sepAfter: %v", def.SepAfter)
	}
	if len(def.Parts) != 3 {
		t.Fatalf("unexpected parts: %+v", def.Parts)
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("bad", strings.NewReader(`token`))
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}
