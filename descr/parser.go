package descr

import (
	"errors"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/goodcodedev/langbase/errs"
)

var langLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Punct", Pattern: `[(){}:,]`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var descrParser = participle.MustBuild[Source](
	participle.Lexer(langLexer),
	participle.UseLookahead(4),
	participle.Elide("Comment", "Whitespace"),
	// Strip the quotes but keep the body verbatim: a token's string is a
	// regex, so escapes such as \( or \t must reach the lexer untouched.
	participle.Map(func(t lexer.Token) (lexer.Token, error) {
		t.Value = t.Value[1 : len(t.Value)-1]
		return t, nil
	}, "String"),
)

// Parse reads a .lang file and returns its description model. A syntax
// error aborts the parse; there is no recovery, matching the Non-goals
// of the language this parser feeds.
func Parse(filename string, r io.Reader) (*Source, error) {
	src, err := descrParser.Parse(filename, r)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			pos := perr.Position()
			return nil, errs.SpecErrors{
				&errs.SpecError{
					Cause: errors.New(perr.Message()),
					Row:   pos.Line,
					Col:   pos.Column,
				},
			}
		}
		return nil, err
	}
	return src, nil
}
