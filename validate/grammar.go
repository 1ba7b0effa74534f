package validate

import (
	"fmt"
	"sort"

	"github.com/goodcodedev/langbase/lang"
)

// UnreachableReport lists every grammar key and token that the start
// symbol's production graph never reaches, in sorted order for stable
// output.
type UnreachableReport struct {
	Keys   []string
	Tokens []string
}

func (r *UnreachableReport) Empty() bool {
	return len(r.Keys) == 0 && len(r.Tokens) == 0
}

// Grammar walks the model's production graph from its start key,
// marking every ast/list/enum grammar key and token it reaches, and
// reports whatever is left unmarked. Adapted from the reachability
// sweep a grammar compiler runs to flag dead rules before it ever gets
// to generating a parsing table; here it runs against the typed
// TypedPart graph instead of a raw AST.
func Grammar(m *lang.Model) *UnreachableReport {
	marked := map[string]bool{}
	markedTokens := map[string]bool{}

	if m.StartKey != "" {
		markUsedKeys(m, m.StartKey, marked, markedTokens)
	}

	report := &UnreachableReport{}
	for key := range m.AstGrammars {
		if !marked[key] {
			report.Keys = append(report.Keys, key)
		}
	}
	for key := range m.ListGrammars {
		if !marked[key] {
			report.Keys = append(report.Keys, key)
		}
	}
	for key := range m.EnumGrammars {
		if !marked[key] {
			report.Keys = append(report.Keys, key)
		}
	}
	for key := range m.Tokens {
		if key == "WS" {
			continue
		}
		if !markedTokens[key] {
			report.Tokens = append(report.Tokens, key)
		}
	}
	sort.Strings(report.Keys)
	sort.Strings(report.Tokens)
	return report
}

func markUsedKeys(m *lang.Model, key string, marked, markedTokens map[string]bool) {
	if marked[key] {
		return
	}
	marked[key] = true

	if ag, ok := m.AstGrammars[key]; ok {
		for _, rd := range ag.RuleDefs {
			markRuleDef(m, rd, marked, markedTokens)
		}
		return
	}
	if lg, ok := m.ListGrammars[key]; ok {
		if lg.Shorthand {
			if lg.ElemType != nil {
				markTypedPart(m, lg.ElemType, marked, markedTokens)
			}
			if lg.Sep != nil {
				markedTokens[lg.Sep.Identifier] = true
			}
			return
		}
		for _, rd := range lg.RuleDefs {
			markRuleDef(m, rd, marked, markedTokens)
		}
		return
	}
	if eg, ok := m.EnumGrammars[key]; ok {
		if ae, ok := m.Enums[eg.EnumKey]; ok {
			for _, member := range ae.Members {
				markedTokens[member] = true
			}
		}
	}
}

func markRuleDef(m *lang.Model, rd *lang.AstRuleDef, marked, markedTokens map[string]bool) {
	if rd.IsRef {
		markUsedKeys(m, rd.RefType.Identifier, marked, markedTokens)
		return
	}
	for _, typed := range rd.TypedParts {
		markTypedPart(m, typed, marked, markedTokens)
	}
}

func markTypedPart(m *lang.Model, typed *lang.TypedPart, marked, markedTokens map[string]bool) {
	switch typed.Type {
	case lang.PToken, lang.PString, lang.PInt, lang.PFloat:
		markedTokens[typed.Identifier] = true
	case lang.PEnum, lang.PAst, lang.PList:
		markUsedKeys(m, typed.Identifier, marked, markedTokens)
	}
}

// Error renders an UnreachableReport as a single error, or nil when
// nothing was unreachable.
func (r *UnreachableReport) Error() error {
	if r.Empty() {
		return nil
	}
	msg := ""
	if len(r.Keys) > 0 {
		msg += fmt.Sprintf("unreachable grammar keys: %v", r.Keys)
	}
	if len(r.Tokens) > 0 {
		if msg != "" {
			msg += "; "
		}
		msg += fmt.Sprintf("unreachable tokens: %v", r.Tokens)
	}
	return fmt.Errorf("%s", msg)
}
