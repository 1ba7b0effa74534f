package emit_test

import (
	"strings"
	"testing"

	"github.com/goodcodedev/langbase/descr"
	"github.com/goodcodedev/langbase/emit"
	"github.com/goodcodedev/langbase/lang"
)

func mustBuild(t *testing.T, src string) *lang.Model {
	t.Helper()
	source, err := descr.Parse("test.lang", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m, err := lang.Build(source)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return m
}

const sampleLang = `
	token plus : string "+"
	token comma ","

	enum op {
		Add "+"
	}

	ast expr {
		(left:expr, op, right:expr),
		leaf(identifier)
	}

	list args expr comma

	start expr
`

func TestLexerSkipsWSAndDispatchesByPrim(t *testing.T) {
	m := mustBuild(t, sampleLang)
	out := emit.Lexer(m, "sample")

	if !strings.Contains(out, `return plus_T`) {
		t.Fatalf("lexer output missing plus token rule:\n%s", out)
	}
	if !strings.Contains(out, `return comma_T`) {
		t.Fatalf("lexer output missing comma token rule:\n%s", out)
	}
	if strings.Contains(out, "WS_T") {
		t.Fatalf("lexer output should never emit a rule for WS:\n%s", out)
	}
	if !strings.Contains(out, "yylval.sval = __strdup(yytext)") {
		t.Fatalf("lexer output missing identifier string capture:\n%s", out)
	}
	if !strings.Contains(out, "%option yylineno") {
		t.Fatalf("lexer output missing yylineno option:\n%s", out)
	}
}

func TestGrammarDeclaresUnionAndStartRule(t *testing.T) {
	m := mustBuild(t, sampleLang)
	out, err := emit.Grammar(m, "sample")
	if err != nil {
		t.Fatalf("Grammar() error = %v", err)
	}

	if !strings.Contains(out, "%union {") {
		t.Fatalf("grammar output missing %%union block:\n%s", out)
	}
	if !strings.Contains(out, "char *sval;") {
		t.Fatalf("grammar output missing sval union member for string tokens:\n%s", out)
	}
	if !strings.Contains(out, "start: expr {") {
		t.Fatalf("grammar output missing start rule:\n%s", out)
	}
	if !strings.Contains(out, "expr:") {
		t.Fatalf("grammar output missing expr productions:\n%s", out)
	}
	if !strings.Contains(out, "args:") {
		t.Fatalf("grammar output missing args list productions:\n%s", out)
	}
}

func TestGrammarRejectsMissingStart(t *testing.T) {
	m := mustBuild(t, `
		token plus : string "+"
		ast expr { leaf(identifier) }
	`)
	if _, err := emit.Grammar(m, "sample"); err == nil {
		t.Fatalf("expected an error when the grammar has no start key")
	}
	if _, err := emit.ClassHeader(m, "sample"); err == nil {
		t.Fatalf("expected an error when the class header has no start key")
	}
}

func TestClassHeaderOrdersParentBeforeSubclass(t *testing.T) {
	src := `
		token plus : string "+"

		ast expr {
			binExpr(left:expr, plus, right:expr),
			leaf(identifier)
		}

		start expr
	`
	m := mustBuild(t, src)
	out, err := emit.ClassHeader(m, "sample")
	if err != nil {
		t.Fatalf("ClassHeader() error = %v", err)
	}

	parentIdx := strings.Index(out, "class expr : public AstNode")
	childIdx := strings.Index(out, "class binExpr : public expr")
	if parentIdx < 0 || childIdx < 0 {
		t.Fatalf("class header missing expected class bodies:\n%s", out)
	}
	if parentIdx > childIdx {
		t.Fatalf("parent class expr must be defined before subclass binExpr")
	}
	if !strings.Contains(out, "expr(NodeType nodeType) : AstNode(nodeType) {}") {
		t.Fatalf("expected a NodeType pass-through constructor on the base class with subclasses:\n%s", out)
	}
	if !strings.Contains(out, "binExpr(") || !strings.Contains(out, ": expr(binExprNode)") {
		t.Fatalf("expected binExpr's constructor to chain into expr with its own NodeType literal:\n%s", out)
	}
}

func TestVisitorDispatchesOnNodeTypeForSubclassedClass(t *testing.T) {
	src := `
		token plus : string "+"

		ast expr {
			binExpr(left:expr, plus, right:expr),
			leaf(identifier)
		}

		start expr
	`
	m := mustBuild(t, src)
	out := emit.Visitor(m, "sample")

	if !strings.Contains(out, "class sampleVisitor {") {
		t.Fatalf("visitor output missing class declaration:\n%s", out)
	}
	if !strings.Contains(out, "switch(node->nodeType)") {
		t.Fatalf("expected expr's visit method to switch on nodeType:\n%s", out)
	}
	if !strings.Contains(out, "case binExprNode: visitbinExpr(static_cast<binExpr*>(node));break;") {
		t.Fatalf("expected a dispatch case for binExpr:\n%s", out)
	}
}

func TestVisitorWalksMembersForLeafClass(t *testing.T) {
	src := `
		token plus : string "+"

		ast expr {
			binExpr(left:expr, plus, right:expr),
			leaf(identifier)
		}

		start expr
	`
	m := mustBuild(t, src)
	out := emit.Visitor(m, "sample")

	if !strings.Contains(out, "void sampleVisitor::visitbinExpr(binExpr *node) {") {
		t.Fatalf("visitor output missing binExpr visit method:\n%s", out)
	}
	if !strings.Contains(out, "visitexpr(node->left);") || !strings.Contains(out, "visitexpr(node->right);") {
		t.Fatalf("expected binExpr's visit method to walk its ast members:\n%s", out)
	}
}

func TestPrinterDispatchesAndAppendsLiterals(t *testing.T) {
	m := mustBuild(t, sampleLang)
	out := emit.Printer(m, "sample")

	if !strings.Contains(out, "class sampleToSource : public sampleVisitor {") {
		t.Fatalf("printer output missing class declaration:\n%s", out)
	}
	if !strings.Contains(out, "void sampleToSource::astKey_expr(expr *node) {") {
		t.Fatalf("printer output missing astKey_expr dispatcher:\n%s", out)
	}
	if !strings.Contains(out, "void sampleToSource::visitleaf(leaf *node) {") {
		t.Fatalf("printer output missing visitleaf case:\n%s", out)
	}
	if !strings.Contains(out, "str += opToString(node->op);") {
		t.Fatalf("printer output missing enum to-string append for op:\n%s", out)
	}
}

func TestPrinterListDispatchHonoursTrailingSeparator(t *testing.T) {
	m := mustBuild(t, sampleLang)
	out := emit.Printer(m, "sample")

	if !strings.Contains(out, "void sampleToSource::listKey_args(std::vector<expr*> *nodes) {") {
		t.Fatalf("printer output missing listKey_args dispatcher:\n%s", out)
	}
	if !strings.Contains(out, `str += ",";`) {
		t.Fatalf("expected args' trailing comma separator to be printed after every element:\n%s", out)
	}
}

func TestPrinterListDispatchHonoursBetweenSeparator(t *testing.T) {
	src := `
		token identifier : string "[a-zA-Z]+"
		token comma ","

		ast expr { leaf(identifier) }

		list args comma expr

		start expr
	`
	m := mustBuild(t, src)
	out := emit.Printer(m, "sample")

	if !strings.Contains(out, "if (node != nodes->front()) {") {
		t.Fatalf("expected a between-elements separator guard for args:\n%s", out)
	}
}

func TestPrinterExpandedListDispatchesBySeparator(t *testing.T) {
	src := `
		token identifier : string "[a-zA-Z]+"
		token comma ","
		token semicolon ";"

		ast stmt { leaf(identifier) }

		list items(block) {
			stmt() semicolon,
			stmt() comma
		}

		start block
	`
	m := mustBuild(t, src)
	out := emit.Printer(m, "sample")

	if !strings.Contains(out, "void sampleToSource::listKey_block(std::vector<items*> *nodes) {") {
		t.Fatalf("printer output missing listKey_block dispatcher:\n%s", out)
	}
	if !strings.Contains(out, "switch (node->nodeType) {") {
		t.Fatalf("expanded list dispatch should switch on nodeType:\n%s", out)
	}
	if !strings.Contains(out, `str += ";";`) || !strings.Contains(out, `str += ",";`) {
		t.Fatalf("expected both per-alternative trailing separators to be printed:\n%s", out)
	}
}
