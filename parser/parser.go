/*
File   : ash/parser/parser.go
Package: parser

Package parser implements Ash's recursive-descent parser with
panic-mode error recovery. It transforms a token.Token sequence into
an ordered []ast.Stmt, reporting every syntax error it finds to an
errs.Reporter while attempting to continue past it — a single bad
statement should not prevent the parser from finding errors in the
rest of the file.

The grammar is the one the specification pins down exactly, lowest to
highest precedence:

	program     -> declaration* EOF
	declaration -> funDecl | varDecl | statement
	funDecl     -> "fun" function
	function    -> IDENTIFIER "(" parameters? ")" block
	parameters  -> IDENTIFIER ( "," IDENTIFIER )*
	varDecl     -> "var" IDENTIFIER ( "=" expression )? ";"
	statement   -> exprStmt | forStmt | ifStmt | printStmt | whileStmt | block
	block       -> "{" declaration* "}"
	exprStmt    -> expression ";"
	printStmt   -> "print" expression ";"
	ifStmt      -> "if" "(" expression ")" statement ( "else" statement )?
	whileStmt   -> "while" "(" expression ")" statement
	forStmt     -> "for" "(" ( varDecl | exprStmt | ";" ) expression? ";" expression? ")" statement
	expression  -> assignment
	assignment  -> IDENTIFIER "=" assignment | logic_or
	logic_or    -> logic_and ( "or" logic_and )*
	logic_and   -> equality ( "and" equality )*
	equality    -> comparison ( ( "!=" | "==" ) comparison )*
	comparison  -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term        -> factor ( ( "-" | "+" ) factor )*
	factor      -> unary ( ( "/" | "*" ) unary )*
	unary       -> ( "!" | "-" ) unary | call
	call        -> primary ( "(" arguments? ")" )*
	arguments   -> expression ( "," expression )*
	primary     -> NUMBER | STRING | "true" | "false" | "nil"
	             | "(" expression ")" | IDENTIFIER

Each grammar rule above maps to a method below, because the
specification pins the precedence ladder down rule-by-rule rather than
leaving it to an operator-precedence table. program is Parse, funDecl
is handled inside declaration, parameters inside function, and
arguments inside finishCall.
*/
package parser

import (
	"github.com/ash-lang/ash/ast"
	"github.com/ash-lang/ash/token"
)

const maxArgs = 255

// Reporter is the minimal error-sink contract the parser needs.
type Reporter interface {
	Report(line int, where, message string)
}

// Parser holds per-instance parse state: the token slice and the
// current read position. The position is an instance field — never
// a package-level variable — so two Parsers can run concurrently
// and a REPL can safely construct a fresh Parser per line.
type Parser struct {
	tokens []token.Token
	pos    int
	report Reporter
}

// New creates a Parser over an already-scanned token sequence.
func New(tokens []token.Token, report Reporter) *Parser {
	return &Parser{tokens: tokens, report: report}
}

// parseError signals panic-mode recovery: it unwinds to the nearest
// declaration() call, which reports nothing further (the error was
// already reported when the ParseError was raised) and synchronizes.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parse runs the parser to completion, returning every top-level
// statement it could recover enough to produce. A statement whose
// declaration panicked and was synchronized past is simply absent
// from the result — the caller checks the Reporter's HadError flag
// to decide whether to run the program at all.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration is the panic-mode boundary: any parseError raised while
// parsing a single declaration is caught here, the parser is
// resynchronized, and nil is returned for that statement.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(token.FUN) {
		return p.function("function")
	}
	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "Expected ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars "for (init; cond; update) body" into:
//
//	{ init; while (cond) { body; update; } }
//
// so the interpreter needs no dedicated For handler.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.check(token.VAR):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "Expected ; after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expected '(' after while.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expected ; after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment first parses a logic_or expression; on seeing "=", it
// recursively parses the right-hand side. Only when the left-hand
// side was a bare Variable does it become an Assign node — any other
// left-hand side reports "Invalid assignment target." and recovers
// by keeping the left-hand expression's value as the overall result,
// rather than raising a parseError (this particular mismatch is
// reported-but-recovered, per the specification).
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, ClosingParen: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	}
	panic(p.errorAt(p.peek(), "Expect expression."))
}

// --- token-stream primitives ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.pos-1]
}

// consume requires the next token to be of kind k, advancing past it;
// otherwise it reports message at the offending token and raises a
// parseError to unwind to the declaration() boundary.
func (p *Parser) consume(k token.Kind, message string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports message at tok's location and returns the
// parseError sentinel for the caller to panic with. Called directly
// (without panicking) for the arity-limit and invalid-assignment
// cases, which are reported but recovered rather than unwound.
func (p *Parser) errorAt(tok token.Token, message string) parseError {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	if p.report != nil {
		p.report.Report(tok.Line, where, message)
	}
	return parseError{}
}

// synchronize discards tokens until it has just consumed a ";" or the
// next token looks like the start of a new statement, so a single
// syntax error doesn't cascade into a flood of spurious ones.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
