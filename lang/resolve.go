package lang

// Resolve looks an identifier up against every registered key, in the
// fixed order a reference is allowed to bind in: token, enum grammar,
// ast grammar, list grammar. It returns nil if nothing matches.
func (m *Model) Resolve(identifier string) *TypedPart {
	if td, ok := m.Tokens[identifier]; ok {
		if td.partType() == PToken {
			return NewTokenPart(identifier)
		}
		return NewPrimPart(td.partType(), identifier)
	}
	if eg, ok := m.EnumGrammars[identifier]; ok {
		return NewEnumPart(identifier, eg.EnumKey)
	}
	if ag, ok := m.AstGrammars[identifier]; ok {
		return NewAstPart(identifier, ag.AstClass)
	}
	if lg, ok := m.ListGrammars[identifier]; ok {
		p := NewListPart(identifier)
		p.ElemType = lg.ElemType
		p.Sep = lg.Sep
		p.SepBetween = lg.SepBetween
		return p
	}
	return nil
}

// keyFromTypeDecl returns the grammar key a TypeDecl registers under:
// its alias when one is given, else its bare identifier.
func keyFromTypeDecl(identifier, alias string) string {
	if alias != "" {
		return alias
	}
	return identifier
}

// classFromTypeDecl returns the generated class/enum name a TypeDecl
// introduces. An alias renames the grammar key other declarations
// reference it by, never the generated class, so this is always the
// bare identifier.
func classFromTypeDecl(identifier, alias string) string {
	return identifier
}
