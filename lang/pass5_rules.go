package lang

import "github.com/goodcodedev/langbase/descr"

// buildRules is Pass 5: every grammar key's productions are rendered as
// GrammarRules with a concrete RuleAction, ready for the emitter.
func (b *Builder) buildRules() error {
	for _, decl := range b.src.Decls {
		switch {
		case decl.Enum != nil:
			b.buildEnumRules(decl.Enum)
		case decl.Ast != nil:
			if err := b.buildAstRules(decl.Ast); err != nil {
				return err
			}
		case decl.List != nil:
			if err := b.buildListRules(decl.List); err != nil {
				return err
			}
		case decl.Start != nil:
			b.buildStartRule(decl.Start)
		}
	}
	return nil
}

func (b *Builder) buildStartRule(s *descr.StartDecl) {
	b.model.StartKey = s.Identifier
	b.model.StartAction = &StartAction{StartPart: b.model.Resolve(s.Identifier)}
}

func (b *Builder) buildEnumRules(e *descr.EnumDecl) {
	grammarKey := keyFromTypeDecl(e.Type.Identifier, e.Type.Alias)
	eg := b.model.EnumGrammars[grammarKey]
	for _, member := range eg.members(b.model) {
		eg.Rules = append(eg.Rules, &GrammarRule{
			Tokens: []*TypedPart{NewTokenPart(member)},
			Action: &EnumValueAction{Member: member},
		})
	}
}

// members returns the enum's member names in declaration order.
func (eg *EnumGrammar) members(m *Model) []string {
	ae, ok := m.Enums[eg.EnumKey]
	if !ok {
		return nil
	}
	return ae.Members
}

func (b *Builder) buildAstRules(a *descr.AstDecl) error {
	grammarKey := keyFromTypeDecl(a.Type.Identifier, a.Type.Alias)
	ag := b.model.AstGrammars[grammarKey]
	for _, def := range a.Defs {
		rule, err := b.generateRule(ag.AstClass, def.Identifier, def.Parts, "", "", def.Pos.Line, def.Pos.Column)
		if err != nil {
			return err
		}
		ag.Rules = append(ag.Rules, rule)
	}
	return nil
}

func (b *Builder) buildListRules(l *descr.ListDecl) error {
	grammarKey := keyFromTypeDecl(l.Type.Identifier, l.Type.Alias)
	lg := b.model.ListGrammars[grammarKey]

	if len(l.Defs) > 0 {
		for _, def := range l.Defs {
			rule, err := b.generateRule(lg.AstClass, def.Identifier, def.Parts, def.SepBefore, def.SepAfter, def.Pos.Line, def.Pos.Column)
			if err != nil {
				return err
			}
			lg.Rules = append(lg.Rules, rule)
		}
		return nil
	}

	// Shorthand form: synthesize the seed (epsilon) rule plus one or two
	// recursive push rules depending on separator placement.
	listPart := NewListPart(grammarKey)
	listPart.ElemType = lg.ElemType
	listPart.Sep = lg.Sep
	listPart.SepBetween = lg.SepBetween
	selfRef := NewListPart(grammarKey)

	lg.Rules = append(lg.Rules, &GrammarRule{
		Tokens: nil,
		Action: &ListInitAction{Type: listPart},
	})

	if lg.SepBetween {
		lg.Rules = append(lg.Rules,
			&GrammarRule{
				Tokens: []*TypedPart{selfRef, lg.ElemType},
				Action: &ListPushAction{ListNum: 1, ElemNum: 2, Type: listPart},
			},
			&GrammarRule{
				Tokens: []*TypedPart{selfRef, lg.Sep, lg.ElemType},
				Action: &ListPushAction{ListNum: 1, ElemNum: 3, Type: listPart},
			},
		)
	} else {
		lg.Rules = append(lg.Rules, &GrammarRule{
			Tokens: []*TypedPart{selfRef, lg.ElemType, lg.Sep},
			Action: &ListPushAction{ListNum: 1, ElemNum: 2, Type: listPart},
		})
	}
	return nil
}

// generateRule renders one ast/list alternative as a GrammarRule. When
// identifier names another ast grammar key, the alternative is a bare
// reference rule; otherwise it is a construction, with sepBefore/
// sepAfter (if given) wrapped around the part list.
func (b *Builder) generateRule(baseAstClass, identifier string, parts []*descr.AstPart, sepBefore, sepAfter string, row, col int) (*GrammarRule, error) {
	if identifier != "" {
		if typed := b.model.Resolve(identifier); typed != nil && typed.Type == PAst {
			refTokens := []*TypedPart{typed}
			if sepAfter != "" {
				sep := b.model.Resolve(sepAfter)
				if sep == nil || sep.Type != PToken {
					return nil, newSpecError(ErrListShape, sepAfter, row, col)
				}
				refTokens = append(refTokens, sep)
			}
			return &GrammarRule{
				Tokens: refTokens,
				Action: &RefAction{Num: 1, Ref: typed},
			}, nil
		}
	}

	defClass := baseAstClass
	if identifier != "" {
		defClass = identifier
	}

	var tokens []*TypedPart
	var args []RuleArg
	num := 0
	if sepBefore != "" {
		num++ // reserve position 1 for the leading separator
	}
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
		num++
		tokens = append(tokens, typed)
		if typed.Type != PToken {
			args = append(args, RuleArg{Num: num, Part: typed})
		}
	}

	partTokens := tokens
	if sepBefore != "" {
		sep := b.model.Resolve(sepBefore)
		if sep == nil || sep.Type != PToken {
			return nil, newSpecError(ErrListShape, sepBefore, row, col)
		}
		tokens = append([]*TypedPart{sep}, tokens...)
	}
	if sepAfter != "" {
		sep := b.model.Resolve(sepAfter)
		if sep == nil || sep.Type != PToken {
			return nil, newSpecError(ErrListShape, sepAfter, row, col)
		}
		num++
		tokens = append(tokens, sep)
	}

	// The fingerprint covers the alternative's own parts only; the
	// separators around them never enter it.
	grammarTokens := make([]string, len(partTokens))
	for i, t := range partTokens {
		grammarTokens[i] = t.GrammarToken()
	}
	serialized := b.model.addFingerprint(defClass, grammarTokens)

	return &GrammarRule{
		Tokens:     tokens,
		Action:     &AstConstructionAction{AstClass: defClass, Args: args, Serialized: serialized},
		Serialized: serialized,
	}, nil
}
