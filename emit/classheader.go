package emit

import (
	"fmt"
	"strings"

	"github.com/goodcodedev/langbase/lang"
)

// ClassHeader renders the ast class header (.hpp): a NodeType enum
// with one entry per synthesized class, each enum block's definition
// and ToString method, the AstNode base class, forward declarations,
// every class definition (parents before subclasses), and the
// Loader::parseFile entry point the rest of the generated sources call
// into.
func ClassHeader(m *lang.Model, langKey string) (string, error) {
	if m.StartAction == nil {
		return "", fmt.Errorf("grammar has no start key")
	}

	var b strings.Builder
	b.WriteString("#pragma once\n")
	b.WriteString("#include <string>\n")
	b.WriteString("#include <vector>\n")

	classKeys := sortedKeys(m.Classes)

	b.WriteString("enum NodeType {\n    ")
	for i, k := range classKeys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%sNode", k)
	}
	b.WriteString("\n};\n")

	enumNames := sortedKeys(m.Enums)
	for _, name := range enumNames {
		writeEnumDefinition(&b, m.Enums[name])
	}
	for _, name := range enumNames {
		writeEnumToString(&b, m.Enums[name])
	}

	b.WriteString("class AstNode {\n")
	b.WriteString("public:\n")
	b.WriteString("    NodeType nodeType;\n")
	b.WriteString("    AstNode(NodeType nodeType) : nodeType(nodeType) {}\n")
	b.WriteString("    virtual ~AstNode() {}\n")
	b.WriteString("};\n")

	for _, k := range classKeys {
		fmt.Fprintf(&b, "class %s;\n", k)
	}

	added := map[string]bool{}
	for _, k := range classKeys {
		writeClassChain(&b, m, k, added)
	}

	startType := m.Resolve(m.StartKey)
	b.WriteString("extern FILE *yyin;\n")
	b.WriteString("extern int yyparse();\n")
	fmt.Fprintf(&b, "extern %s result;\n", startType.GrammarType())
	b.WriteString("class Loader {\npublic:\n")
	fmt.Fprintf(&b, "static %s parseFile(std::string fileName) {\n", startType.GrammarType())
	b.WriteString("    FILE *sourceFile;\n")
	b.WriteString("    #ifdef _WIN32\n")
	b.WriteString("    fopen_s(&sourceFile, fileName.c_str(), \"r\");\n")
	b.WriteString("    #else\n")
	b.WriteString("    sourceFile = fopen(fileName.c_str(), \"r\");\n")
	b.WriteString("    #endif\n")
	b.WriteString("    if (!sourceFile) {\n")
	b.WriteString("        printf(\"Can't open file %s\", fileName.c_str());\n")
	b.WriteString("        exit(1);\n")
	b.WriteString("    }\n")
	b.WriteString("    yyin = sourceFile;\n")
	b.WriteString("    do {\n        yyparse();\n    } while (!feof(yyin));\n")
	b.WriteString("    return result;\n")
	b.WriteString("}\n};\n")

	return b.String(), nil
}

func writeEnumDefinition(b *strings.Builder, e *lang.AstEnum) {
	fmt.Fprintf(b, "enum %s {\n    ", e.Name)
	for i, m := range e.Members {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
	}
	b.WriteString("\n};\n")
}

func writeEnumToString(b *strings.Builder, e *lang.AstEnum) {
	fmt.Fprintf(b, "std::string %sToString(%s v) {\n    switch (v) {\n", e.Name, e.Name)
	for _, m := range e.Members {
		fmt.Fprintf(b, "        case %s: return \"%s\";\n", m, cleanLiteral(e.Values[m]))
	}
	b.WriteString("        default: return \"\";\n    }\n}\n")
}

// writeClassChain emits identifier's base classes (depth-first, so a
// parent is always defined before any class that extends it) before
// emitting identifier's own class body.
func writeClassChain(b *strings.Builder, m *lang.Model, identifier string, added map[string]bool) {
	if added[identifier] {
		return
	}
	cls := m.Classes[identifier]
	if cls.Extends != nil {
		writeClassChain(b, m, cls.Extends.Identifier, added)
	}
	writeClassBody(b, m, cls)
	added[identifier] = true
}

func writeClassBody(b *strings.Builder, m *lang.Model, cls *lang.AstClass) {
	base := "AstNode"
	if cls.Extends != nil {
		base = cls.Extends.Identifier
	}
	fmt.Fprintf(b, "class %s : public %s {\npublic:\n", cls.Identifier, base)
	keys := cls.SortedMemberKeys()
	for _, k := range keys {
		mem := cls.Members[k]
		fmt.Fprintf(b, "    %s %s;\n", mem.Part.GrammarType(), mem.Key)
	}
	for _, ctor := range cls.Constructors {
		writeConstructor(b, cls, ctor)
	}
	if len(cls.Subclasses) > 0 {
		fmt.Fprintf(b, "    %s(NodeType nodeType) : %s(nodeType) {}\n", cls.Identifier, baseCtorTarget(cls))
	}
	b.WriteString("};\n")
}

// writeConstructor matches the member-init order the original always
// uses: alphabetical by member key (mirroring a std::map's iteration
// order), restricted to the members this particular constructor's args
// actually populate.
func writeConstructor(b *strings.Builder, cls *lang.AstClass, ctor *lang.AstClassConstructor) {
	argSet := map[string]bool{}
	params := make([]string, len(ctor.Args))
	for i, key := range ctor.Args {
		mem := cls.Members[key]
		params[i] = fmt.Sprintf("%s %s", mem.Part.GrammarType(), mem.Key)
		argSet[key] = true
	}
	fmt.Fprintf(b, "    %s(%s) : %s(%sNode)", cls.Identifier, strings.Join(params, ", "), baseCtorTarget(cls), cls.Identifier)
	for _, key := range cls.SortedMemberKeys() {
		if !argSet[key] {
			continue
		}
		fmt.Fprintf(b, ", %s(%s)", key, key)
	}
	b.WriteString(" {}\n")
}

func baseCtorTarget(cls *lang.AstClass) string {
	if cls.Extends != nil {
		return cls.Extends.Identifier
	}
	return "AstNode"
}

func cleanLiteral(regex string) string {
	return strings.ReplaceAll(regex, `\`, "")
}
