package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxscript/loxscript/lexer"
	"github.com/loxscript/loxscript/parser"
	"github.com/loxscript/loxscript/value"
)

func parseSource(t *testing.T, src string) ([]parser.Stmt, *parser.Parser) {
	t.Helper()
	lx := lexer.New(src)
	tokens := lx.Scan()
	require.Empty(t, lx.Diagnostics)
	p := parser.New(tokens)
	stmts := p.Parse()
	return stmts, p
}

func TestParsePrecedence(t *testing.T) {
	stmts, p := parseSource(t, "1 + 2 * 3;")
	require.False(t, p.HasErrors(), p.GetErrors())
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*parser.ExpressionStmt)
	require.True(t, ok)

	binary, ok := exprStmt.Expr.(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, binary.Operator.Type)

	_, ok = binary.Left.(*parser.LiteralExpr)
	require.True(t, ok)

	right, ok := binary.Right.(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.STAR, right.Operator.Type)
}

func TestParseVarDeclaration(t *testing.T) {
	stmts, p := parseSource(t, `var x = "hi";`)
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 1)

	varStmt, ok := stmts[0].(*parser.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", varStmt.Name.Lexeme)

	lit, ok := varStmt.Initializer.(*parser.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, value.String{Val: "hi"}, lit.Value)
}

func TestParseAssignmentProducesAssignExpr(t *testing.T) {
	stmts, p := parseSource(t, "x = 2;")
	require.False(t, p.HasErrors())
	exprStmt := stmts[0].(*parser.ExpressionStmt)
	assign, ok := exprStmt.Expr.(*parser.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestInvalidAssignmentTargetRecordsErrorButReturnsExpr(t *testing.T) {
	stmts, p := parseSource(t, "1 = 2;")
	require.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0], "Invalid assignment target.")
	require.Len(t, stmts, 1)
}

func TestLogicalOperatorsProduceLogicalExpr(t *testing.T) {
	stmts, p := parseSource(t, `print "a" or 1;`)
	require.False(t, p.HasErrors())
	printStmt := stmts[0].(*parser.PrintStmt)
	_, ok := printStmt.Expr.(*parser.LogicalExpr)
	require.True(t, ok)
}

func TestBlockAndWhileParse(t *testing.T) {
	stmts, p := parseSource(t, `var n = 0; while (n < 3) { n = n + 1; print n; }`)
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 2)

	whileStmt, ok := stmts[1].(*parser.WhileStmt)
	require.True(t, ok)
	block, ok := whileStmt.Body.(*parser.BlockStmt)
	require.True(t, ok)
	assert.Len(t, block.Statements, 2)
}

func TestMissingSemicolonRecordsOneDiagnosticAndSynchronizes(t *testing.T) {
	// The failed statement swallows through the next ";" while
	// synchronizing (the keyword-boundary check only fires on tokens seen
	// *after* the mandatory first advance), so only the diagnostic survives.
	stmts, p := parseSource(t, "print 1 print 2;")
	require.True(t, p.HasErrors())
	assert.Len(t, p.GetErrors(), 1)
	assert.Empty(t, stmts)

	stmts, p = parseSource(t, "print 1 print 2; print 3;")
	require.True(t, p.HasErrors())
	require.Len(t, stmts, 1)
	printStmt := stmts[0].(*parser.PrintStmt)
	lit := printStmt.Expr.(*parser.LiteralExpr)
	assert.Equal(t, value.Number{Val: 3}, lit.Value)
}

func TestUnmatchedPrimaryYieldsNilLiteralWithoutError(t *testing.T) {
	// "*" cannot start a primary expression, so primary() falls back to a
	// Nil literal instead of recording a parse error; "*" is then read as
	// the surrounding factor's own operator, masking the bad input exactly
	// as the lenient fallback intends.
	stmts, p := parseSource(t, "* 1; print 2;")
	require.False(t, p.HasErrors())
	require.Len(t, stmts, 2)

	exprStmt := stmts[0].(*parser.ExpressionStmt)
	binary, ok := exprStmt.Expr.(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.STAR, binary.Operator.Type)
	lit := binary.Left.(*parser.LiteralExpr)
	assert.Equal(t, value.Nothing, lit.Value)
}

func TestMissingClosingParenRecordsError(t *testing.T) {
	_, p := parseSource(t, "(1 + 2;")
	require.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0], "Expect ')' after expression.")
}

func TestForKeywordIsParseError(t *testing.T) {
	_, p := parseSource(t, "for (x) print x;")
	require.True(t, p.HasErrors())
}
