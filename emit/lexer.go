// Package emit renders a built language model into the five
// generated-source artifacts a language build produces: the flex
// lexer spec, the bison grammar, the ast class header, the visitor
// base class, and the source-reconstruction printer. It also knows how
// to invoke the external flex/bison generators over the rendered
// lexer/grammar files.
package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goodcodedev/langbase/lang"
)

// Lexer renders the flex (.l) file for m: one rule per registered
// token, dispatching to the yylval union member its primitive payload
// needs. The WS sentinel is never emitted as a rule; it exists only to
// signal "whitespace is allowed here" in the description, not to be
// tokenized.
func Lexer(m *lang.Model, langKey string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%%{\n#include \"%s.tab.h\"\n", langKey)
	b.WriteString("#define register // Deprecated in c++11\n")
	b.WriteString("#ifdef _WIN32\n")
	b.WriteString("    #define __strdup _strdup\n")
	b.WriteString("#else\n")
	b.WriteString("    #define __strdup strdup\n")
	b.WriteString("#endif\n")
	b.WriteString("%}\n")
	b.WriteString("%option yylineno\n")
	b.WriteString("%%\n")

	for _, key := range sortedTokenKeys(m) {
		if key == "WS" {
			continue
		}
		td := m.Tokens[key]
		grammarTok := key + "_T"
		switch td.Prim {
		case lang.PrimInt:
			fmt.Fprintf(&b, "%s { yylval.ival = atoi(yytext); return %s; }\n", td.Regex, grammarTok)
		case lang.PrimString:
			fmt.Fprintf(&b, "%s { yylval.sval = __strdup(yytext); return %s; }\n", td.Regex, grammarTok)
		case lang.PrimFloat:
			fmt.Fprintf(&b, "%s { yylval.fval = atof(yytext); return %s; }\n", td.Regex, grammarTok)
		default:
			fmt.Fprintf(&b, "%s { return %s; }\n", td.Regex, grammarTok)
		}
	}

	b.WriteString("%%\n")
	b.WriteString("int yywrap() { return 1; }\n")
	return b.String()
}

func sortedTokenKeys(m *lang.Model) []string {
	keys := make([]string, 0, len(m.Tokens))
	for k := range m.Tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
