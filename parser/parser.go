/*
File : loxscript/parser/parser.go
*/

// Package parser implements a recursive-descent parser with precedence
// climbing for loxscript. It consumes the token stream produced by package
// lexer and emits a list of statements, recovering from syntax errors by
// synchronizing to the next statement boundary rather than aborting.
package parser

import (
	"fmt"

	"github.com/loxscript/loxscript/lexer"
	"github.com/loxscript/loxscript/value"
)

// Parser holds the token stream and cursor. It collects diagnostics in
// Errors rather than panicking, so the driver can surface every syntax error
// from one parse in a single batch.
type Parser struct {
	tokens  []lexer.Token
	current int
	Errors  []string
}

// New creates a Parser over a complete token stream (which must end with an
// EOF token, as lexer.Lexer.Scan guarantees).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether any syntax errors were recorded during Parse.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// GetErrors returns every diagnostic recorded during Parse, in the order
// they were encountered.
func (p *Parser) GetErrors() []string {
	return p.Errors
}

// Parse consumes the entire token stream and returns the resulting
// statement list. A statement that fails to parse contributes its error to
// Errors and is skipped after synchronizing to the next statement boundary;
// parsing always continues to the end of the stream.
func (p *Parser) Parse() []Stmt {
	var statements []Stmt
	for !p.isAtEnd() {
		stmt, ok := p.declaration()
		if ok {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration := "var" IDENT ( "=" expression )? ";" | statement
func (p *Parser) declaration() (stmt Stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.synchronize()
			stmt, ok = nil, false
		}
	}()

	if p.match(lexer.VAR) {
		return p.varDeclaration(), true
	}
	return p.statement(), true
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")

	var initializer Expr = &LiteralExpr{Value: value.Nothing}
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}

	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

// statement dispatches on the leading keyword of a statement.
func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		return &BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) ifStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after while condition.")
	body := p.statement()
	return &WhileStmt{Condition: condition, Body: body}
}

func (p *Parser) printStatement() Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &PrintStmt{Expr: expr}
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ExpressionStmt{Expr: expr}
}

// block parses the statements inside a "{" ... "}" pair; the opening brace
// has already been consumed by the caller.
func (p *Parser) block() []Stmt {
	var statements []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, ok := p.declaration()
		if ok {
			statements = append(statements, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}'.")
	return statements
}

// expression := assignment
func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment := logic_or ( "=" assignment )?
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		rhs := p.assignment()

		if variable, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: variable.Name, Value: rhs}
		}
		p.error(equals, "Invalid assignment target.")
	}
	return expr
}

// logic_or := logic_and ( "or" logic_and )*
func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// logic_and := equality ( "and" equality )*
func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// equality := comparison ( ("!="|"==") comparison )*
func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// comparison := term ( (">"|">="|"<"|"<=") term )*
func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// term := factor ( ("-"|"+") factor )*
func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// factor := unary ( ("/"|"*") unary )*
func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// unary := ("!"|"-") unary | primary
func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &UnaryExpr{Operator: operator, Right: right}
	}
	return p.primary()
}

// primary := "true" | "false" | "nil" | NUMBER | STRING | IDENT | "(" expression ")"
//
// An unmatched token yields a Nil literal rather than a parse error, so the
// parser stays productive even on an expression it does not recognize.
func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return &LiteralExpr{Value: value.Boolean{Val: false}}
	case p.match(lexer.TRUE):
		return &LiteralExpr{Value: value.Boolean{Val: true}}
	case p.match(lexer.NIL):
		return &LiteralExpr{Value: value.Nothing}
	case p.match(lexer.NUMBER):
		return &LiteralExpr{Value: value.Number{Val: p.previous().Number}}
	case p.match(lexer.STRING):
		return &LiteralExpr{Value: value.String{Val: p.previous().Lexeme}}
	case p.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		inner := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{Inner: inner}
	default:
		return &LiteralExpr{Value: value.Nothing}
	}
}

// --- token-stream primitives ---

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// consume advances past the next token if it matches t, recording message
// as a diagnostic and panicking to unwind to the nearest declaration() if it
// does not. The panic is recovered by declaration, which synchronizes and
// resumes parsing at the next statement boundary.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.error(p.peek(), message)
	panic(parseError{})
}

// parseError is the sentinel panic value used to unwind from a failed
// consume() to the enclosing declaration()'s recover.
type parseError struct{}

// error records a diagnostic: the EOF sentinel has no lexeme worth quoting,
// so it is reported without the "at '<lexeme>'" clause; every other token
// includes its lexeme.
func (p *Parser) error(tok lexer.Token, message string) {
	if tok.Type == lexer.EOF {
		p.Errors = append(p.Errors, fmt.Sprintf("[line %d] Error: %s", tok.Line, message))
		return
	}
	p.Errors = append(p.Errors, fmt.Sprintf("[line %d] Error at '%s': %s", tok.Line, tok.Lexeme, message))
}

// synchronize discards tokens until it reaches a plausible statement
// boundary: just past a semicolon, or just before a keyword that begins a
// top-level construct. This bounds the blast radius of one syntax error to
// the statement it occurred in.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}

		p.advance()
	}
}
