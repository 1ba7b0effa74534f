package lang

import (
	"fmt"
	"strings"
	"unicode"
)

// PartType tags what kind of grammar value a TypedPart carries.
type PartType int

const (
	PToken PartType = iota // a syntax-only token; carries no value
	PString
	PInt
	PFloat
	PEnum
	PAst
	PList
)

func (t PartType) String() string {
	switch t {
	case PToken:
		return "token"
	case PString:
		return "string"
	case PInt:
		return "int"
	case PFloat:
		return "float"
	case PEnum:
		return "enum"
	case PAst:
		return "ast"
	case PList:
		return "list"
	default:
		return "unknown"
	}
}

// TypedPart is the single typed-value algebra used across resolution,
// grammar generation and printer generation. A part's meaning is
// determined by Type; the remaining fields are populated according to
// that tag, mirroring a closed sum type rather than a class hierarchy.
type TypedPart struct {
	Type       PartType
	Identifier string // grammar key (enum/ast/list) or token key (token/string/int/float)
	Alias      string

	EnumKey  string     // PEnum: the enum class identifier
	AstClass string     // PAst: the concrete ast class this part resolves to
	ElemType *TypedPart // PList: element type
	Sep      *TypedPart // PList: separator token
	SepBetween bool     // PList: true if separator sits between elements, false if after each
}

// NewTokenPart builds a syntax-only token reference.
func NewTokenPart(identifier string) *TypedPart {
	return &TypedPart{Type: PToken, Identifier: identifier}
}

// NewPrimPart builds a value-carrying primitive reference sourced from a token.
func NewPrimPart(prim PartType, identifier string) *TypedPart {
	return &TypedPart{Type: prim, Identifier: identifier}
}

// NewEnumPart builds a reference to an enum grammar key.
func NewEnumPart(identifier, enumKey string) *TypedPart {
	return &TypedPart{Type: PEnum, Identifier: identifier, EnumKey: enumKey}
}

// NewAstPart builds a reference to an ast grammar key.
func NewAstPart(identifier, astClass string) *TypedPart {
	return &TypedPart{Type: PAst, Identifier: identifier, AstClass: astClass}
}

// NewListPart builds a reference to a list grammar key.
func NewListPart(identifier string) *TypedPart {
	return &TypedPart{Type: PList, Identifier: identifier}
}

// WithAlias returns a shallow copy of p carrying the given member alias.
func (p *TypedPart) WithAlias(alias string) *TypedPart {
	cp := *p
	cp.Alias = alias
	return &cp
}

// Equal reports whether two parts have the same type and alias, the
// comparison Pass 6 uses to detect a member-type conflict.
func (p *TypedPart) Equal(o *TypedPart) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Type == o.Type && p.Alias == o.Alias
}

// GrammarToken returns the bison/yacc token symbol this part appears as
// on the right-hand side of a production.
func (p *TypedPart) GrammarToken() string {
	switch p.Type {
	case PToken, PString, PInt, PFloat:
		return p.Identifier + "_T"
	default:
		return p.Identifier
	}
}

// MemberKey returns the struct/class member name this part is stored
// under: the alias if one was given and differs from the identifier,
// else a lower-cased-first identifier for enum/ast references, else the
// raw identifier.
func (p *TypedPart) MemberKey() string {
	if p.Alias != "" && p.Alias != p.Identifier {
		return p.Alias
	}
	switch p.Type {
	case PEnum, PAst:
		return lowerFirst(p.Identifier)
	default:
		return p.Identifier
	}
}

// GrammarType returns the C++ type this part's value is stored as in
// the generated %union / class member.
func (p *TypedPart) GrammarType() string {
	switch p.Type {
	case PString:
		return "std::string"
	case PInt:
		return "int"
	case PFloat:
		return "double"
	case PEnum:
		return p.EnumKey
	case PAst:
		return p.AstClass + "*"
	case PList:
		return fmt.Sprintf("std::vector<%s>*", p.ElemType.GrammarType())
	default:
		return "std::string"
	}
}

// GrammarVal returns the bison action-side expression that converts the
// raw $N value into this part's C++ type.
func (p *TypedPart) GrammarVal(num int) string {
	switch p.Type {
	case PString, PInt, PFloat:
		return fmt.Sprintf("$%d", num)
	case PEnum:
		return fmt.Sprintf("static_cast<%s>($%d)", p.EnumKey, num)
	case PAst:
		return fmt.Sprintf("reinterpret_cast<%s*>($%d)", p.AstClass, num)
	case PList:
		return fmt.Sprintf("reinterpret_cast<std::vector<%s>*>($%d)", p.ElemType.GrammarType(), num)
	case PToken:
		return fmt.Sprintf("%q", p.Identifier)
	default:
		return fmt.Sprintf("$%d", num)
	}
}

// cleanLiteral strips the escaping backslashes out of a token regex so
// it can be reprinted verbatim, e.g. `\(` -> `(`.
func cleanLiteral(regex string) string {
	return strings.ReplaceAll(regex, `\`, "")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
