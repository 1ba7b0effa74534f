package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goodcodedev/langbase/lang"
)

// Grammar renders the bison (.y) file for m: the %union/%token/%type
// declarations every registered primitive, enum, ast and list key
// needs, followed by the start rule and one production block per
// grammar key.
func Grammar(m *lang.Model, langKey string) (string, error) {
	if m.StartAction == nil {
		return "", fmt.Errorf("grammar has no start key")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%%{\n#include <stdio.h>\n#include \"%s.hpp\"\n", langKey)
	startType := m.Resolve(m.StartKey)
	b.WriteString(startType.GrammarType())
	b.WriteString(" result;\n")
	b.WriteString("extern FILE *yyin;\n")
	b.WriteString("void yyerror(const char *s);\n")
	b.WriteString("extern int yylex(void);\n")
	b.WriteString("extern int yylineno;\n")
	b.WriteString("%}\n")

	b.WriteString("%union {\n")
	b.WriteString("    void *ptr;\n")
	if m.TokenTypes[lang.PrimInt] {
		b.WriteString("    int ival;\n")
	}
	if m.TokenTypes[lang.PrimString] {
		b.WriteString("    char *sval;\n")
	}
	if m.TokenTypes[lang.PrimFloat] {
		b.WriteString("    double fval;\n")
	}
	b.WriteString("}\n")

	for _, key := range sortedTokenKeys(m) {
		if key == "WS" {
			continue
		}
		td := m.Tokens[key]
		switch td.Prim {
		case lang.PrimInt:
			fmt.Fprintf(&b, "%%token <ival> %s_T\n", key)
		case lang.PrimString:
			fmt.Fprintf(&b, "%%token <sval> %s_T\n", key)
		case lang.PrimFloat:
			fmt.Fprintf(&b, "%%token <fval> %s_T\n", key)
		default:
			fmt.Fprintf(&b, "%%token %s_T\n", key)
		}
	}

	enumKeys := sortedKeys(m.EnumGrammars)
	if len(enumKeys) > 0 {
		b.WriteString("%type <ival> ")
		for _, k := range enumKeys {
			b.WriteString(k)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	astKeys := sortedKeys(m.AstGrammars)
	listKeys := sortedKeys(m.ListGrammars)
	if len(astKeys) > 0 || len(listKeys) > 0 {
		b.WriteString("%type <ptr> start ")
		for _, k := range astKeys {
			b.WriteString(k)
			b.WriteString(" ")
		}
		for _, k := range listKeys {
			b.WriteString(k)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("%%\n")
	fmt.Fprintf(&b, "start: %s { %s }\n    ;\n", m.StartKey, m.StartAction.GenerateGrammar())

	for _, k := range astKeys {
		writeProductions(&b, k, m.AstGrammars[k].Rules)
	}
	for _, k := range listKeys {
		writeProductions(&b, k, m.ListGrammars[k].Rules)
	}
	for _, k := range enumKeys {
		writeProductions(&b, k, m.EnumGrammars[k].Rules)
	}

	b.WriteString("\n%%\n")
	b.WriteString("void yyerror(const char *s) {\n")
	b.WriteString("    printf(\"Parse error on line %d: %s\", yylineno, s);\n")
	b.WriteString("}\n")
	return b.String(), nil
}

func writeProductions(b *strings.Builder, key string, rules []*lang.GrammarRule) {
	fmt.Fprintf(b, "%s:", key)
	for i, rule := range rules {
		if i > 0 {
			b.WriteString("\n    |")
		}
		b.WriteString(rule.GenerateGrammar())
	}
	b.WriteString("\n    ;\n")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
