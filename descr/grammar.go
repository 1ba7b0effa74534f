// Package descr defines the typed description model a language build
// starts from and the parser that reads a .lang file into it.
//
// The grammar mirrors the node shapes of the language-base description
// tree: tokens, enums, ast declarations, lists and a start symbol.
package descr

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// TokType names the primitive type carried by a token or enum member.
type TokType string

const (
	TokNone   TokType = ""
	TokString TokType = "string"
	TokInt    TokType = "int"
	TokFloat  TokType = "float"
)

// Source is the root of a parsed .lang file.
type Source struct {
	Pos   lexer.Position
	Decls []*Decl `@@*`
}

// Decl is exactly one of the five declaration forms.
type Decl struct {
	Pos   lexer.Position
	Token *TokenDecl `(  @@`
	Enum  *EnumDecl  ` | @@`
	Ast   *AstDecl   ` | @@`
	List  *ListDecl  ` | @@`
	Start *StartDecl ` | @@ )`
}

// TokenDecl declares a single lexical token, e.g. token comma : string ",".
type TokenDecl struct {
	Pos        lexer.Position
	Identifier string  `"token" @Ident`
	Type       TokType `( ":" @( "string" | "int" | "float" ) )?`
	Regex      string  `@String`
}

// TypeDecl names a declaration: identifier or identifier(alias). The
// identifier names the generated class or enum; the alias, when given,
// is the grammar key other declarations reference it by.
type TypeDecl struct {
	Pos        lexer.Position
	Identifier string `@Ident`
	Alias      string `( "(" @Ident ")" )?`
}

// EnumDecl declares an enumeration and its literal-valued members.
type EnumDecl struct {
	Pos     lexer.Position
	Type    *TypeDecl     `"enum" @@`
	Members []*EnumMember `"{" @@ ( "," @@ )* "}"`
}

// EnumMember is one name/literal pair inside an enum block.
type EnumMember struct {
	Pos        lexer.Position
	Identifier string `@Ident`
	Regex      string `@String`
}

// AstDecl declares an ast grammar key and its alternative constructions.
type AstDecl struct {
	Pos  lexer.Position
	Type *TypeDecl `"ast" @@`
	Defs []*AstDef `"{" @@ ( "," @@ )* "}"`
}

// AstDef is one alternative of an ast or list rule: an optional subclass
// name followed by a parenthesized part list.
type AstDef struct {
	Pos        lexer.Position
	Identifier string     `( @Ident )?`
	Parts      []*AstPart `"(" ( @@ ( "," @@ )* )? ")"`
}

// AstPart references another key, optionally under a member alias.
type AstPart struct {
	Pos        lexer.Position
	Identifier string `@Ident`
	Alias      string `( ":" @Ident )?`
}

// ListDecl declares a list grammar key, either in shorthand form (a pair
// of identifiers naming the element key and the separator token) or in
// expanded form (a block of ListDef alternatives).
type ListDecl struct {
	Pos      lexer.Position
	Type     *TypeDecl  `"list" @@`
	Defs     []*ListDef `(  "{" @@ ( "," @@ )* "}"`
	AstKey   string     ` | @Ident`
	TokenSep string     `   @Ident )`
}

// ListDef is one alternative of an expanded list rule. SepBefore, when
// present, is written as "ident :" immediately before the part list to
// distinguish it unambiguously from the optional subclass identifier.
type ListDef struct {
	Pos        lexer.Position
	SepBefore  string     `( @Ident ":" )?`
	Identifier string     `( @Ident )?`
	Parts      []*AstPart `"(" ( @@ ( "," @@ )* )? ")"`
	SepAfter   string     `( @Ident )?`
}

// StartDecl names the grammar key the generated parser starts from.
type StartDecl struct {
	Pos        lexer.Position
	Identifier string `"start" @Ident`
}
