package lang

import (
	"fmt"
	"strings"
)

// RuleAction is the semantic action attached to a GrammarRule. Each
// concrete action renders the bison action-block body for its rule;
// this is a closed set, modeled as a sum type rather than a class
// hierarchy.
type RuleAction interface {
	GenerateGrammar() string
}

// RuleArg is one positional, value-carrying symbol of a production
// (literal tokens never appear here, only the parts that got a $N).
type RuleArg struct {
	Num  int
	Part *TypedPart
}

// AstConstructionAction builds a new instance of AstClass from its
// positional args.
type AstConstructionAction struct {
	AstClass   string
	Args       []RuleArg
	Serialized string
}

func (a *AstConstructionAction) GenerateGrammar() string {
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.Part.GrammarVal(arg.Num)
	}
	return fmt.Sprintf("$$ = new %s(%s);", a.AstClass, strings.Join(parts, ", "))
}

// RefAction passes a single referenced symbol's value straight through.
type RefAction struct {
	Num int
	Ref *TypedPart
}

func (a *RefAction) GenerateGrammar() string {
	return fmt.Sprintf("$$ = %s;", a.Ref.GrammarVal(a.Num))
}

// EnumValueAction returns a single enum member's literal value.
type EnumValueAction struct {
	Member string
}

func (a *EnumValueAction) GenerateGrammar() string {
	return fmt.Sprintf("$$ = %s;", a.Member)
}

// ListInitAction seeds a new, empty list (the epsilon production of a
// shorthand list grammar).
type ListInitAction struct {
	Type *TypedPart
}

func (a *ListInitAction) GenerateGrammar() string {
	return fmt.Sprintf("$$ = new std::vector<%s>();", a.Type.ElemType.GrammarType())
}

// ListPushAction appends one element onto an existing list symbol.
type ListPushAction struct {
	ListNum int
	ElemNum int
	Type    *TypedPart // the list's own TypedPart (for ElemType)
}

func (a *ListPushAction) GenerateGrammar() string {
	elemType := a.Type.ElemType.GrammarType()
	return fmt.Sprintf(
		"auto list = reinterpret_cast<std::vector<%s>*>($%d); list->push_back(%s); $$ = list;",
		elemType, a.ListNum, a.Type.ElemType.GrammarVal(a.ElemNum),
	)
}

// StartAction assigns the parse result from the start production.
type StartAction struct {
	StartPart *TypedPart
}

func (a *StartAction) GenerateGrammar() string {
	return fmt.Sprintf("result = %s; $$ = result;", a.StartPart.GrammarVal(1))
}

// GrammarRule is one alternative of a grammar production: its full
// right-hand-side symbol sequence (including separators, excluding
// nothing) and the action that runs when it reduces.
type GrammarRule struct {
	Tokens     []*TypedPart
	Action     RuleAction
	Serialized string
}

// GenerateGrammar renders this rule's bison right-hand side, skipping
// the WS sentinel wherever it appears.
func (r *GrammarRule) GenerateGrammar() string {
	var b strings.Builder
	for _, tok := range r.Tokens {
		if tok.Identifier == "WS" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(tok.GrammarToken())
	}
	b.WriteString(" { ")
	b.WriteString(r.Action.GenerateGrammar())
	b.WriteString(" }")
	return b.String()
}
