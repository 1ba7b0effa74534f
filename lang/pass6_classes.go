package lang

// buildClasses is Pass 6: every ast/list grammar's rules synthesize or
// extend an AstClass — its members, and a deduplicated constructor per
// distinct fingerprint. Shorthand lists never reach here: their element
// type is always an existing ast/prim/enum key, so no new class is
// needed for them.
func (b *Builder) buildClasses() error {
	for _, ag := range b.model.AstGrammars {
		b.model.EnsureClass(ag.AstClass)
		for _, rule := range ag.Rules {
			if err := b.buildFromRule(rule, ag.AstClass); err != nil {
				return err
			}
		}
	}
	for _, lg := range b.model.ListGrammars {
		if lg.Shorthand {
			continue
		}
		b.model.EnsureClass(lg.AstClass)
		for _, rule := range lg.Rules {
			if err := b.buildFromRule(rule, lg.AstClass); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Builder) buildFromRule(rule *GrammarRule, baseAstName string) error {
	switch action := rule.Action.(type) {
	case *RefAction:
		if action.Ref.Type != PAst {
			return newSpecError(ErrUnsupportedAction, "ref to non-ast key", 0, 0)
		}
		_, err := b.model.EnsureSubRelation(baseAstName, action.Ref.AstClass)
		return err

	case *AstConstructionAction:
		ruleClass, err := b.model.EnsureSubRelation(baseAstName, action.AstClass)
		if err != nil {
			return err
		}

		for _, arg := range action.Args {
			memberKey := arg.Part.MemberKey()
			if existing, ok := ruleClass.Members[memberKey]; ok {
				if !existing.Part.Equal(arg.Part) {
					return newSpecError(ErrTypeConflict, memberKey, 0, 0)
				}
				continue
			}
			ruleClass.Members[memberKey] = &AstClassMember{Key: memberKey, Part: arg.Part}
		}

		for _, c := range ruleClass.Constructors {
			if c.Serialized == action.Serialized {
				return nil
			}
		}
		argKeys := make([]string, len(action.Args))
		for i, a := range action.Args {
			argKeys[i] = a.Part.MemberKey()
		}
		ruleClass.Constructors = append(ruleClass.Constructors, &AstClassConstructor{
			Args:       argKeys,
			Serialized: action.Serialized,
		})
		return nil

	default:
		return newSpecError(ErrUnsupportedAction, "", 0, 0)
	}
}
