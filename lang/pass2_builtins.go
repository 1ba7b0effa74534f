package lang

import "github.com/goodcodedev/langbase/descr"

// addBuiltinTokens is Pass 2: every identifier referenced as a part,
// separator or shorthand list element that Pass 1 left unregistered is
// looked up in the fixed built-in token table; a miss is fatal.
func (b *Builder) addBuiltinTokens() error {
	for _, decl := range b.src.Decls {
		switch {
		case decl.Ast != nil:
			for _, def := range decl.Ast.Defs {
				if err := b.addBuiltinsForParts(def.Parts); err != nil {
					return err
				}
			}
		case decl.List != nil:
			if err := b.addBuiltinsForList(decl.List); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Builder) addBuiltinsForParts(parts []*descr.AstPart) error {
	for _, part := range parts {
		if err := b.addBuiltinIfMissing(part.Identifier, part.Pos.Line, part.Pos.Column); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) addBuiltinsForList(l *descr.ListDecl) error {
	if len(l.Defs) == 0 {
		if err := b.addBuiltinIfMissing(l.AstKey, l.Pos.Line, l.Pos.Column); err != nil {
			return err
		}
		return b.addBuiltinIfMissing(l.TokenSep, l.Pos.Line, l.Pos.Column)
	}
	for _, def := range l.Defs {
		if def.SepBefore != "" {
			if err := b.addBuiltinIfMissing(def.SepBefore, def.Pos.Line, def.Pos.Column); err != nil {
				return err
			}
		}
		if err := b.addBuiltinsForParts(def.Parts); err != nil {
			return err
		}
		if def.SepAfter != "" {
			if err := b.addBuiltinIfMissing(def.SepAfter, def.Pos.Line, def.Pos.Column); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Builder) addBuiltinIfMissing(identifier string, row, col int) error {
	if identifier == "" {
		return nil
	}
	if b.model.Resolve(identifier) != nil {
		return nil
	}
	bt, ok := lookupBuiltinToken(identifier)
	if !ok {
		return newSpecError(ErrUnresolvedReference, identifier, row, col)
	}
	b.model.Tokens[identifier] = bt
	if bt.Prim != PrimNone {
		b.model.TokenTypes[bt.Prim] = true
	}
	return nil
}
