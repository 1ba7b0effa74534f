package lang

// PrimType names the payload a registered token carries in the lexer:
// no value at all, or a string/int/float literal.
type PrimType int

const (
	PrimNone PrimType = iota
	PrimString
	PrimInt
	PrimFloat
)

// TokenData is the lexical registration of a single grammar key: its
// regex and the primitive payload (if any) the lexer hands to the
// parser for it.
type TokenData struct {
	Identifier string
	Regex      string
	Prim       PrimType
}

// partType reports which TypedPart.Type a token's primitive payload
// resolves to when the token is referenced as a value (PToken for a
// payload-less token, the matching prim type otherwise).
func (t TokenData) partType() PartType {
	switch t.Prim {
	case PrimString:
		return PString
	case PrimInt:
		return PInt
	case PrimFloat:
		return PFloat
	default:
		return PToken
	}
}

// builtinTokens is a fixed grammar-key -> lexical-registration entry
// that Pass 2 falls back to when a description never declares a token
// explicitly.
var builtinTokens = []TokenData{
	{Identifier: "LPAREN", Regex: `\(`, Prim: PrimNone},
	{Identifier: "RPAREN", Regex: `\)`, Prim: PrimNone},
	{Identifier: "LBRACE", Regex: `\{`, Prim: PrimNone},
	{Identifier: "RBRACE", Regex: `\}`, Prim: PrimNone},
	{Identifier: "COMMA", Regex: `\,`, Prim: PrimNone},
	{Identifier: "SEMICOLON", Regex: `\;`, Prim: PrimNone},
	{Identifier: "EQUAL", Regex: `\=`, Prim: PrimNone},
	{Identifier: "intConst", Regex: `[1-9][0-9]*`, Prim: PrimInt},
	{Identifier: "identifier", Regex: `[_a-zA-Z][0-9_a-zA-Z]*`, Prim: PrimString},
	{Identifier: "WS", Regex: ` `, Prim: PrimNone},
}

// lookupBuiltinToken returns the fixed built-in registration for
// identifier, if any.
func lookupBuiltinToken(identifier string) (TokenData, bool) {
	for _, t := range builtinTokens {
		if t.Identifier == identifier {
			return t, true
		}
	}
	return TokenData{}, false
}
