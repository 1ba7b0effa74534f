package lang

import "github.com/goodcodedev/langbase/descr"

// resolveListTypes is Pass 3: every list grammar's element type is
// filled in, either from its shorthand astKey/tokenSep pair or, for an
// expanded list, from its own TypeDecl. A shorthand list whose element
// type is itself another not-yet-resolved list is deferred onto a
// retry queue; a queue that stops shrinking indicates a cycle.
func (b *Builder) resolveListTypes() error {
	var queue []*descr.ListDecl
	for _, decl := range b.src.Decls {
		if decl.List == nil {
			continue
		}
		deferred, err := b.resolveListType(decl.List)
		if err != nil {
			return err
		}
		if deferred {
			queue = append(queue, decl.List)
		}
	}

	if len(queue) == 0 {
		return nil
	}

	stagnant := 0
	for len(queue) > 0 {
		prevSize := len(queue)
		next := queue[1:]
		deferred, err := b.resolveListType(queue[0])
		if err != nil {
			return err
		}
		if deferred {
			next = append(next, queue[0])
		}
		queue = next

		if len(queue) == prevSize {
			stagnant++
			if stagnant >= len(queue) {
				detail := ""
				for i, l := range queue {
					if i > 0 {
						detail += ", "
					}
					detail += l.Type.Identifier
				}
				return newSpecError(ErrListCycle, detail, queue[0].Pos.Line, queue[0].Pos.Column)
			}
		} else {
			stagnant = 0
		}
	}
	return nil
}

// resolveListType attempts to resolve a single list declaration's
// element type, returning true if it must be retried later.
func (b *Builder) resolveListType(l *descr.ListDecl) (bool, error) {
	grammarKey := keyFromTypeDecl(l.Type.Identifier, l.Type.Alias)
	lg := b.model.ListGrammars[grammarKey]

	if len(l.Defs) == 0 {
		typed1 := b.model.Resolve(l.AstKey)
		typed2 := b.model.Resolve(l.TokenSep)

		var listType, sepToken *TypedPart
		var sepBetween bool
		switch {
		case typed1 != nil && typed1.Type == PToken:
			sepBetween = true
			sepToken = typed1
			listType = typed2
		case typed2 != nil && typed2.Type == PToken:
			sepBetween = false
			sepToken = typed2
			listType = typed1
		default:
			return false, newSpecError(ErrListShape, l.Type.Identifier, l.Pos.Line, l.Pos.Column)
		}

		if listType == nil || b.listTypeUnresolved(listType) {
			// The element key is itself an unresolved list; retry later.
			return true, nil
		}

		lg.Shorthand = true
		lg.ElemType = listType
		lg.Sep = sepToken
		lg.SepBetween = sepBetween
		return false, nil
	}

	// Expanded form: both identifier and alias are required. Its
	// alternatives construct or reference a mix of subclasses that all
	// get reparented under lg.AstClass in Pass 6, so that class (not a
	// re-resolution of the list's grammar key) is the element type every
	// concrete alternative is stored and iterated as.
	if l.Type.Identifier == "" || l.Type.Alias == "" {
		return false, newSpecError(ErrListShape, l.Type.Identifier, l.Pos.Line, l.Pos.Column)
	}
	lg.ElemType = NewAstPart(lg.AstClass, lg.AstClass)
	return false, nil
}

// listTypeUnresolved reports whether typed is a reference to another
// list grammar key whose own element type has not been filled in yet.
// Resolve succeeds for any registered list key as soon as Pass 1 has
// seen it, so a plain nil check on typed cannot tell "no such key" from
// "registered but not resolved yet"; this does.
func (b *Builder) listTypeUnresolved(typed *TypedPart) bool {
	if typed.Type != PList {
		return false
	}
	target, ok := b.model.ListGrammars[typed.Identifier]
	if !ok {
		return false
	}
	return target.ElemType == nil
}
