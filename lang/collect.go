package lang

// CollectAstClasses returns every concrete class reachable from
// grammarKey, following reference alternatives transitively. It is the
// basis for the emitter's multi-case dispatch: a grammar key whose
// alternatives are all references ultimately resolves to the set of
// leaf classes its reference chain bottoms out at.
func (m *Model) CollectAstClasses(grammarKey string) []string {
	visited := map[string]bool{}
	seen := map[string]bool{}
	var classes []string

	var walk func(key string)
	walk = func(key string) {
		if visited[key] {
			return
		}
		visited[key] = true

		var ruleDefs []*AstRuleDef
		if ag, ok := m.AstGrammars[key]; ok {
			ruleDefs = ag.RuleDefs
		} else if lg, ok := m.ListGrammars[key]; ok {
			ruleDefs = lg.RuleDefs
		} else {
			return
		}

		for _, rd := range ruleDefs {
			if rd.IsRef {
				walk(rd.RefType.Identifier)
				continue
			}
			if !seen[rd.AstClass] {
				seen[rd.AstClass] = true
				classes = append(classes, rd.AstClass)
			}
		}
	}
	walk(grammarKey)
	return classes
}
