package lang

import "github.com/goodcodedev/langbase/descr"

// registerKeys is Pass 1: it walks the description once, registering a
// TokenData, AstGrammar, ListGrammar or EnumGrammar entry for every key
// a declaration introduces. No resolution happens here; that is Passes
// 2-3's job.
func (b *Builder) registerKeys() error {
	for _, decl := range b.src.Decls {
		switch {
		case decl.Token != nil:
			b.registerToken(decl.Token)
		case decl.Enum != nil:
			b.registerEnum(decl.Enum)
		case decl.Ast != nil:
			b.registerAst(decl.Ast)
		case decl.List != nil:
			b.registerList(decl.List)
		}
	}
	return nil
}

func (b *Builder) registerToken(t *descr.TokenDecl) {
	prim := PrimNone
	switch t.Type {
	case descr.TokString:
		prim = PrimString
	case descr.TokInt:
		prim = PrimInt
	case descr.TokFloat:
		prim = PrimFloat
	}
	b.model.Tokens[t.Identifier] = TokenData{
		Identifier: t.Identifier,
		Regex:      t.Regex,
		Prim:       prim,
	}
	if prim != PrimNone {
		b.model.TokenTypes[prim] = true
	}
}

func (b *Builder) registerEnum(e *descr.EnumDecl) {
	grammarKey := keyFromTypeDecl(e.Type.Identifier, e.Type.Alias)
	enumKey := classFromTypeDecl(e.Type.Identifier, e.Type.Alias)
	eg := &EnumGrammar{Key: grammarKey, EnumKey: enumKey}
	b.model.EnumGrammars[grammarKey] = eg

	ae := b.model.EnsureEnum(enumKey)
	for _, mem := range e.Members {
		// Every enum member is also a plain literal token: the lexer
		// sees its regex, the parser reduces it straight to the member.
		b.model.Tokens[mem.Identifier] = TokenData{
			Identifier: mem.Identifier,
			Regex:      mem.Regex,
			Prim:       PrimNone,
		}
		ae.Members = append(ae.Members, mem.Identifier)
		ae.Values[mem.Identifier] = mem.Regex
	}
}

func (b *Builder) registerAst(a *descr.AstDecl) {
	grammarKey := keyFromTypeDecl(a.Type.Identifier, a.Type.Alias)
	b.model.AstGrammars[grammarKey] = &AstGrammar{
		Key:      grammarKey,
		AstClass: classFromTypeDecl(a.Type.Identifier, a.Type.Alias),
	}
}

func (b *Builder) registerList(l *descr.ListDecl) {
	grammarKey := keyFromTypeDecl(l.Type.Identifier, l.Type.Alias)
	b.model.ListGrammars[grammarKey] = &ListGrammar{
		Key:      grammarKey,
		AstClass: classFromTypeDecl(l.Type.Identifier, l.Type.Alias),
	}
}
