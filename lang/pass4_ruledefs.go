package lang

import "github.com/goodcodedev/langbase/descr"

// buildRuleDefs is Pass 4: every ast/list alternative is reduced to an
// AstRuleDef, either a reference to another ast grammar key or a
// concrete construction with its fingerprint computed. These feed the
// emitter's astKey_/listKey_ dispatchers (including the reference-chain
// walk in CollectAstClasses) and validate's reachability sweep; Passes
// 5-7 re-derive everything else directly from the description.
func (b *Builder) buildRuleDefs() error {
	for _, decl := range b.src.Decls {
		switch {
		case decl.Ast != nil:
			grammarKey := keyFromTypeDecl(decl.Ast.Type.Identifier, decl.Ast.Type.Alias)
			ag := b.model.AstGrammars[grammarKey]
			for _, def := range decl.Ast.Defs {
				rd, err := b.generateAstDef(ag.AstClass, def.Identifier, def.Parts, def.Pos.Line, def.Pos.Column)
				if err != nil {
					return err
				}
				ag.RuleDefs = append(ag.RuleDefs, rd)
			}
		case decl.List != nil:
			if len(decl.List.Defs) == 0 {
				continue
			}
			grammarKey := keyFromTypeDecl(decl.List.Type.Identifier, decl.List.Type.Alias)
			lg := b.model.ListGrammars[grammarKey]
			for _, def := range decl.List.Defs {
				rd, err := b.generateAstDef(lg.AstClass, def.Identifier, def.Parts, def.Pos.Line, def.Pos.Column)
				if err != nil {
					return err
				}
				if def.SepAfter != "" {
					sep := b.model.Resolve(def.SepAfter)
					if sep == nil || sep.Type != PToken {
						return newSpecError(ErrListShape, def.SepAfter, def.Pos.Line, def.Pos.Column)
					}
					rd.SepAfter = sep
				}
				lg.RuleDefs = append(lg.RuleDefs, rd)
			}
		}
	}
	return nil
}

// generateAstDef reduces one alternative's identifier + part list to an
// AstRuleDef, following the same resolve-as-reference-first logic the
// original applies: if identifier names another ast grammar key, this
// alternative is a bare reference to it; otherwise identifier (if given)
// names a subclass of baseAstClass, and the parts become a construction.
func (b *Builder) generateAstDef(baseAstClass, identifier string, parts []*descr.AstPart, row, col int) (*AstRuleDef, error) {
	if identifier != "" {
		if typed := b.model.Resolve(identifier); typed != nil && typed.Type == PAst {
			return &AstRuleDef{IsRef: true, RefType: typed}, nil
		}
	}

	defClass := baseAstClass
	if identifier != "" {
		defClass = identifier
	}

	tokens := make([]string, 0, len(parts))
	typedParts := make([]*TypedPart, 0, len(parts))
	for _, part := range parts {
		alias := part.Alias
		if alias == "" {
			alias = part.Identifier
		}
		typed := b.model.Resolve(part.Identifier)
		if typed == nil {
			return nil, newSpecError(ErrUnresolvedReference, part.Identifier, row, col)
		}
		if typed.Identifier == "WS" {
			continue
		}
		typed = typed.WithAlias(alias)
		typedParts = append(typedParts, typed)
		tokens = append(tokens, typed.GrammarToken())
	}

	serialized := b.model.addFingerprint(defClass, tokens)
	return &AstRuleDef{
		AstClass:   defClass,
		Tokens:     tokens,
		TypedParts: typedParts,
		Serialized: serialized,
	}, nil
}
