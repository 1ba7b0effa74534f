package emit

import (
	"fmt"
	"strings"

	"github.com/goodcodedev/langbase/lang"
)

// Printer renders the generated <langKey>ToSource class: the
// astKey_/listKey_ dispatch methods (one per grammar key, switching on
// a node's runtime NodeType to the right concrete visit method or, for
// a reference alternative, recursing into the referenced key's own
// dispatcher) plus the per-class visit methods Pass 7's ClassCases
// supply the bodies for.
func Printer(m *lang.Model, langKey string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#include \"%sVisitor.hpp\"\n", langKey)
	b.WriteString("#include <string>\n")
	className := langKey + "ToSource"
	fmt.Fprintf(&b, "class %s : public %sVisitor {\npublic:\n", className, langKey)
	b.WriteString("    std::string str;\n")

	astKeys := sortedKeys(m.AstGrammars)
	listKeys := sortedKeys(m.ListGrammars)
	classKeys := sortedKeys(m.ClassCases)

	for _, k := range astKeys {
		fmt.Fprintf(&b, "    void astKey_%s(%s *node);\n", k, m.AstGrammars[k].AstClass)
	}
	for _, k := range listKeys {
		lg := m.ListGrammars[k]
		fmt.Fprintf(&b, "    void listKey_%s(std::vector<%s> *list);\n", k, lg.ElemType.GrammarType())
	}
	for _, k := range classKeys {
		fmt.Fprintf(&b, "    void visit%s(%s *node);\n", k, k)
	}
	b.WriteString("};\n\n")

	for _, k := range astKeys {
		writeAstDispatch(&b, m, className, k)
	}
	for _, k := range listKeys {
		writeListDispatch(&b, m, className, k)
	}
	for _, k := range classKeys {
		fmt.Fprintf(&b, "void %s::visit%s(%s *node) {\n", className, k, k)
		b.WriteString(m.ClassCases[k].Code)
		b.WriteString("}\n")
	}
	return b.String()
}

func writeAstDispatch(b *strings.Builder, m *lang.Model, className, key string) {
	ag := m.AstGrammars[key]
	fmt.Fprintf(b, "void %s::astKey_%s(%s *node) {\n", className, key, ag.AstClass)
	b.WriteString("    switch (node->nodeType) {\n")
	for _, rd := range ag.RuleDefs {
		if rd.IsRef {
			for _, cls := range m.CollectAstClasses(rd.RefType.Identifier) {
				fmt.Fprintf(b, "        case %sNode:\n", cls)
			}
			fmt.Fprintf(b, "        astKey_%s(static_cast<%s*>(node));break;\n", rd.RefType.Identifier, rd.RefType.AstClass)
			continue
		}
		fmt.Fprintf(b, "        case %sNode: visit%s(static_cast<%s*>(node));break;\n", rd.AstClass, rd.AstClass, rd.AstClass)
	}
	b.WriteString("    }\n}\n")
}

func writeListDispatch(b *strings.Builder, m *lang.Model, className, key string) {
	lg := m.ListGrammars[key]
	elemType := lg.ElemType.GrammarType()
	fmt.Fprintf(b, "void %s::listKey_%s(std::vector<%s> *nodes) {\n", className, key, elemType)
	fmt.Fprintf(b, "    for (%s node : *nodes) {\n", elemType)
	if lg.SepBetween && lg.Sep != nil {
		b.WriteString("        if (node != nodes->front()) {\n")
		fmt.Fprintf(b, "            str += \"%s\";\n", cleanLiteral(sepLiteral(m, lg.Sep)))
		b.WriteString("        }\n")
	}

	if lg.Shorthand {
		b.WriteString(elementPrintCode(m, lg.ElemType))
		if !lg.SepBetween && lg.Sep != nil {
			fmt.Fprintf(b, "        str += \"%s\";\n", cleanLiteral(sepLiteral(m, lg.Sep)))
		}
		b.WriteString("    }\n}\n")
		return
	}

	b.WriteString("        switch (node->nodeType) {\n")
	for _, rd := range lg.RuleDefs {
		if rd.IsRef {
			for _, cls := range m.CollectAstClasses(rd.RefType.Identifier) {
				fmt.Fprintf(b, "            case %sNode:\n", cls)
			}
			fmt.Fprintf(b, "            {\n                astKey_%s(static_cast<%s*>(node));\n", rd.RefType.Identifier, rd.RefType.AstClass)
			if rd.SepAfter != nil {
				fmt.Fprintf(b, "                str += \"%s\";\n", cleanLiteral(sepLiteral(m, rd.SepAfter)))
			}
			b.WriteString("                break;\n            }\n")
			continue
		}
		fmt.Fprintf(b, "            case %sNode: {\n                visit%s(static_cast<%s*>(node));\n", rd.AstClass, rd.AstClass, rd.AstClass)
		if rd.SepAfter != nil {
			fmt.Fprintf(b, "                str += \"%s\";\n", cleanLiteral(sepLiteral(m, rd.SepAfter)))
		}
		b.WriteString("                break;\n            }\n")
	}
	b.WriteString("        }\n    }\n}\n")
}

// elementPrintCode renders the statement that appends one shorthand
// list element to str, dispatched by the element's part type.
func elementPrintCode(m *lang.Model, elem *lang.TypedPart) string {
	switch elem.Type {
	case lang.PString:
		return "        str += node;\n"
	case lang.PInt, lang.PFloat:
		return "        str += std::to_string(node);\n"
	case lang.PEnum:
		return fmt.Sprintf("        str += %sToString(node);\n", elem.EnumKey)
	case lang.PAst:
		return fmt.Sprintf("        visit%s(node);\n", elem.AstClass)
	default:
		return ""
	}
}

func sepLiteral(m *lang.Model, sep *lang.TypedPart) string {
	if td, ok := m.Tokens[sep.Identifier]; ok {
		return td.Regex
	}
	return ""
}
