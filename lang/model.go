package lang

// Model is the fully resolved language model a builder produces by
// running Passes 1-7 over a descr.Source. Once Build returns, a Model
// is immutable and is the only input the emitter needs.
type Model struct {
	// Tokens holds every registered lexical key, explicit or built-in,
	// keyed by grammar key. WS is always present once referenced.
	Tokens map[string]TokenData

	// Enums holds the class-shaped declaration of each 'enum' block,
	// keyed by enum key (the TypeDecl identifier of the enum block).
	Enums map[string]*AstEnum

	// EnumGrammars, AstGrammars and ListGrammars hold the grammar side
	// of each declared key, keyed by grammar key.
	EnumGrammars map[string]*EnumGrammar
	AstGrammars  map[string]*AstGrammar
	ListGrammars map[string]*ListGrammar

	// Classes holds every synthesized ast class, keyed by class name.
	Classes map[string]*AstClass

	// ClassCases holds Pass 7's output: the accumulated printer-method
	// body for each ast class, keyed by class name.
	ClassCases map[string]*PrinterCase

	// TokenTypes records which primitive payload types are in use, for
	// the emitter's %union / field generation.
	TokenTypes map[PrimType]bool

	// StartKey/StartAction describe the grammar's entry production.
	StartKey    string
	StartAction RuleAction

	// fingerprints memoizes which (astClass, fingerprint) pairs have
	// already been assigned, mirroring LData::serializedTokenLists.
	fingerprints map[string]map[string]bool
}

// NewModel returns an empty Model ready for Pass 1.
func NewModel() *Model {
	return &Model{
		Tokens:       map[string]TokenData{},
		Enums:        map[string]*AstEnum{},
		EnumGrammars: map[string]*EnumGrammar{},
		AstGrammars:  map[string]*AstGrammar{},
		ListGrammars: map[string]*ListGrammar{},
		Classes:      map[string]*AstClass{},
		ClassCases:   map[string]*PrinterCase{},
		TokenTypes:   map[PrimType]bool{},
		fingerprints: map[string]map[string]bool{},
	}
}

// AstEnum is the class-shaped form of an 'enum' declaration: its name,
// its members in declaration order, and the literal each member prints
// as.
type AstEnum struct {
	Name    string
	Members []string
	Values  map[string]string // member -> literal regex/value
}

// EnsureEnum returns the AstEnum for name, creating it if absent.
func (m *Model) EnsureEnum(name string) *AstEnum {
	if e, ok := m.Enums[name]; ok {
		return e
	}
	e := &AstEnum{Name: name, Values: map[string]string{}}
	m.Enums[name] = e
	return e
}

// EnumGrammar is the grammar side of an 'enum' declaration: one
// production per member, each returning that member's value.
type EnumGrammar struct {
	Key     string
	EnumKey string
	Rules   []*GrammarRule
}

// AstGrammar is the grammar side of an 'ast' declaration.
type AstGrammar struct {
	Key      string
	AstClass string
	RuleDefs []*AstRuleDef
	Rules    []*GrammarRule
}

// ListGrammar is the grammar side of a 'list' declaration, either
// shorthand (element + separator token pair) or expanded (its own
// alternatives, like an ast declaration).
type ListGrammar struct {
	Key string

	// Shorthand form.
	Shorthand  bool
	ElemType   *TypedPart
	Sep        *TypedPart
	SepBetween bool

	// Expanded form.
	AstClass string
	RuleDefs []*AstRuleDef
	Rules    []*GrammarRule
}

// AstRuleDef is Pass 4's output: one alternative of an ast or list
// declaration, reduced to either a reference to another ast grammar key
// or a concrete construction with its fingerprint computed.
type AstRuleDef struct {
	IsRef    bool
	RefType  *TypedPart // set when IsRef
	AstClass string     // final resolved class name (construction form)

	Tokens     []string     // the non-separator token sequence, for fingerprinting
	TypedParts []*TypedPart // the parts in declaration order (construction form)

	Serialized string

	// List-only: the effective separator token appended after the
	// construction's own tokens, if any.
	SepAfter *TypedPart
}

func (m *Model) ensureFingerprintSet(astClass string) map[string]bool {
	set, ok := m.fingerprints[astClass]
	if !ok {
		set = map[string]bool{}
		m.fingerprints[astClass] = set
	}
	return set
}

// addFingerprint registers and returns the fingerprint for tokens under
// astClass, matching LData::serializeTokenList / addSerializedTokenList.
func (m *Model) addFingerprint(astClass string, tokens []string) string {
	fp := Fingerprint(tokens)
	m.ensureFingerprintSet(astClass)[fp] = true
	return fp
}
