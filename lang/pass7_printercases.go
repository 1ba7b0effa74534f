package lang

import (
	"fmt"

	"github.com/goodcodedev/langbase/descr"
)

// PrinterCase is the accumulated source-reconstruction body for one ast
// class: the printer statement for each of its members, in declaration
// order, plus the fingerprint it was built from (so a second, different
// alternative targeting the same class is caught as ErrMultipleCases).
type PrinterCase struct {
	AstClass    string
	Fingerprint string
	Code        string
}

// buildPrinterCases is Pass 7. It re-walks the ast/list declarations
// directly (not Pass 4's rule defs) and accumulates one printer
// case per concrete class. A reference alternative is skipped: the
// grammar key it points at builds the case when its own declaration is
// visited.
//
// Every ast/list member reference is printed through the generic
// astKey_/listKey_ dispatcher rather than switching between a direct
// visit<Class> call and a dispatcher call the way the original
// distinguishes "class-keyed" from "key-keyed" members: the dispatcher
// degenerates to a single case when a grammar key only ever resolves to
// one class, so the printed output is identical either way.
func (b *Builder) buildPrinterCases() error {
	for _, decl := range b.src.Decls {
		switch {
		case decl.Ast != nil:
			grammarKey := keyFromTypeDecl(decl.Ast.Type.Identifier, decl.Ast.Type.Alias)
			baseClass := decl.Ast.Type.Identifier
			if ag, ok := b.model.AstGrammars[grammarKey]; ok {
				baseClass = ag.AstClass
			}
			for _, def := range decl.Ast.Defs {
				if err := b.genToSource(baseClass, def.Identifier, def.Parts); err != nil {
					return err
				}
			}
		case decl.List != nil:
			if len(decl.List.Defs) == 0 {
				continue
			}
			grammarKey := keyFromTypeDecl(decl.List.Type.Identifier, decl.List.Type.Alias)
			baseClass := decl.List.Type.Identifier
			if lg, ok := b.model.ListGrammars[grammarKey]; ok {
				baseClass = lg.AstClass
			}
			for _, def := range decl.List.Defs {
				if err := b.genToSource(baseClass, def.Identifier, def.Parts); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (b *Builder) genToSource(baseClass, identifier string, parts []*descr.AstPart) error {
	if identifier != "" {
		if typed := b.model.Resolve(identifier); typed != nil && typed.Type == PAst {
			return nil
		}
	}

	defClass := baseClass
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
			return newSpecError(ErrUnresolvedReference, part.Identifier, part.Pos.Line, part.Pos.Column)
		}
		if typed.Identifier == "WS" {
			continue
		}
		typed = typed.WithAlias(alias)
		typedParts = append(typedParts, typed)
		tokens = append(tokens, typed.GrammarToken())
	}
	fingerprint := Fingerprint(tokens)

	existing, ok := b.model.ClassCases[defClass]
	if ok {
		if existing.Fingerprint != fingerprint {
			return newSpecError(ErrMultipleCases, defClass, 0, 0)
		}
		return nil
	}

	pc := &PrinterCase{AstClass: defClass, Fingerprint: fingerprint}
	for _, typed := range typedParts {
		pc.Code += b.printerCode(typed)
	}
	b.model.ClassCases[defClass] = pc
	return nil
}

// printerCode renders the statement one typed part contributes to its
// owning class's printer method.
func (b *Builder) printerCode(typed *TypedPart) string {
	switch typed.Type {
	case PToken:
		if typed.Identifier == "WS" {
			return ""
		}
		literal := cleanLiteral(b.model.Tokens[typed.Identifier].Regex)
		return fmt.Sprintf("str += \"%s\";\n", literal)
	case PString:
		return fmt.Sprintf("str += node->%s;\n", typed.MemberKey())
	case PInt, PFloat:
		return fmt.Sprintf("str += std::to_string(node->%s);\n", typed.MemberKey())
	case PEnum:
		return fmt.Sprintf("str += %sToString(node->%s);\n", typed.EnumKey, typed.MemberKey())
	case PAst:
		return fmt.Sprintf("astKey_%s(node->%s);\n", typed.Identifier, typed.MemberKey())
	case PList:
		return fmt.Sprintf("listKey_%s(node->%s);\n", typed.Identifier, typed.MemberKey())
	default:
		return ""
	}
}
