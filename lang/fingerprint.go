package lang

import "strings"

// Fingerprint builds the canonical serialization of a non-separator
// token sequence used to deduplicate constructors: the tokens joined by
// underscore, terminated with "_S".
func Fingerprint(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok)
		b.WriteString("_")
	}
	b.WriteString("S")
	return b.String()
}
