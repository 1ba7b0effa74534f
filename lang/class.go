package lang

import "sort"

// AstClassMember is one field of a synthesized ast class.
type AstClassMember struct {
	Key  string
	Part *TypedPart
}

// AstClassConstructor is one distinct constructor signature a class
// accumulates, deduplicated by fingerprint across every rule that
// builds an instance of the class.
type AstClassConstructor struct {
	Args       []string // member keys, in the order the rule's RuleArgs supplied them
	Serialized string
}

// AstClass is a synthesized node type: its own members plus, through
// Extends, the members and constructors it inherits from whichever
// grammar key's rules first built it or reparented it there.
type AstClass struct {
	Identifier string
	Extends    *AstClass
	Members    map[string]*AstClassMember
	Constructors []*AstClassConstructor
	Subclasses []*AstClass
}

// NewAstClass returns an empty class named identifier.
func NewAstClass(identifier string) *AstClass {
	return &AstClass{
		Identifier: identifier,
		Members:    map[string]*AstClassMember{},
	}
}

// SortedMemberKeys returns this class's own member keys in the same
// order a C++ std::map would iterate them: plain alphabetical order.
// The emitter's header/visitor generation relies on this order to match
// the original's output; constructor args keep their rule order.
func (c *AstClass) SortedMemberKeys() []string {
	keys := make([]string, 0, len(c.Members))
	for k := range c.Members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EnsureClass returns the class named identifier, creating an
// unparented one if it does not exist yet.
func (m *Model) EnsureClass(identifier string) *AstClass {
	if c, ok := m.Classes[identifier]; ok {
		return c
	}
	c := NewAstClass(identifier)
	m.Classes[identifier] = c
	return c
}

// EnsureSubRelation makes sub extend base, failing with ErrReparentConflict
// if sub already extends a different class. Returns sub (or base itself
// when the two names are identical, i.e. no subclassing is needed).
func (m *Model) EnsureSubRelation(baseName, subName string) (*AstClass, error) {
	base := m.EnsureClass(baseName)
	if baseName == subName {
		return base, nil
	}
	sub := m.EnsureClass(subName)
	if sub.Extends != nil && sub.Extends.Identifier != baseName {
		return nil, newSpecError(ErrReparentConflict, sub.Identifier, 0, 0)
	}
	if sub.Extends == nil {
		sub.Extends = base
		base.Subclasses = append(base.Subclasses, sub)
	}
	return sub, nil
}
