package emit

import (
	"fmt"
	"strings"

	"github.com/goodcodedev/langbase/lang"
)

// Visitor renders the generated <langKey>Visitor base class: one
// virtual visit<Class> per synthesized class. A class with subclasses
// dispatches on its runtime NodeType to the matching subclass visit
// method; a leaf class instead walks its own ast/list members,
// visiting each in turn.
func Visitor(m *lang.Model, langKey string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#include \"%s.hpp\"\n", langKey)
	className := langKey + "Visitor"
	classKeys := sortedKeys(m.Classes)

	fmt.Fprintf(&b, "class %s {\npublic:\n", className)
	for _, k := range classKeys {
		fmt.Fprintf(&b, "    virtual void visit%s(%s *node);\n", k, k)
	}
	b.WriteString("};\n")

	for _, k := range classKeys {
		cls := m.Classes[k]
		fmt.Fprintf(&b, "void %s::visit%s(%s *node) {\n", className, k, k)
		if len(cls.Subclasses) > 0 {
			b.WriteString("    switch(node->nodeType) {\n")
			for _, sub := range cls.Subclasses {
				fmt.Fprintf(&b, "        case %sNode: visit%s(static_cast<%s*>(node));break;\n", sub.Identifier, sub.Identifier, sub.Identifier)
			}
			b.WriteString("        default:break;\n    }\n")
		} else {
			for _, memberKey := range cls.SortedMemberKeys() {
				mem := cls.Members[memberKey]
				writeVisitorMember(&b, m, mem)
			}
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func writeVisitorMember(b *strings.Builder, m *lang.Model, mem *lang.AstClassMember) {
	switch mem.Part.Type {
	case lang.PAst:
		fmt.Fprintf(b, "    visit%s(node->%s);\n", mem.Part.AstClass, mem.Key)
	case lang.PList:
		if mem.Part.ElemType == nil || mem.Part.ElemType.Type != lang.PAst {
			return
		}
		fmt.Fprintf(b, "    for (%s node : *node->%s) {\n", mem.Part.ElemType.GrammarType(), mem.Key)
		fmt.Fprintf(b, "        visit%s(node);\n", mem.Part.ElemType.AstClass)
		b.WriteString("    }\n")
	}
}
