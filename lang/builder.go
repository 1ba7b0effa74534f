package lang

import "github.com/goodcodedev/langbase/descr"

// Builder runs the fixed seven-pass pipeline over a parsed description,
// accumulating the resulting Model. Each pass is a method that mutates
// Model in place; Build runs them in the only order they are valid in.
type Builder struct {
	src   *descr.Source
	model *Model
}

// NewBuilder returns a Builder ready to compile src.
func NewBuilder(src *descr.Source) *Builder {
	return &Builder{src: src, model: NewModel()}
}

// Build runs Passes 1-7 in order, stopping at the first fatal error.
func (b *Builder) Build() (*Model, error) {
	passes := []func() error{
		b.registerKeys,
		b.addBuiltinTokens,
		b.resolveListTypes,
		b.buildRuleDefs,
		b.buildRules,
		b.buildClasses,
		b.buildPrinterCases,
	}
	for _, pass := range passes {
		if err := pass(); err != nil {
			return nil, err
		}
	}
	return b.model, nil
}

// Build is the package-level convenience entry point: parse errors
// aside, it is the only thing a caller needs.
func Build(src *descr.Source) (*Model, error) {
	return NewBuilder(src).Build()
}
