/*
File   : ash/ast/expr.go
Package: ast

Package ast defines the two disjoint sum types the rest of the
interpreter agrees on: Expr (expressions) and Stmt (statements, in
stmt.go). Each variant implements Accept, dispatching to exactly one
method of the relevant visitor interface — the "open operation" the
design calls for, so a new pass (the interpreter today, perhaps a
resolver tomorrow) is a new implementation of the interface rather
than a new case bolted onto every node.

Literal values and environment bindings are typed interface{} here on
purpose: ast has no need to know about the value package's Callable
machinery, and keeping ast free of that dependency keeps the package
graph acyclic (value, in turn, depends on ast for Function's captured
declaration).
*/
package ast

import "github.com/ash-lang/ash/token"

// ExprVisitor is the contract any pass over expressions must satisfy:
// exactly one method per Expr variant, no fallthrough.
type ExprVisitor interface {
	VisitLiteralExpr(e *Literal) (interface{}, error)
	VisitGroupingExpr(e *Grouping) (interface{}, error)
	VisitUnaryExpr(e *Unary) (interface{}, error)
	VisitBinaryExpr(e *Binary) (interface{}, error)
	VisitLogicalExpr(e *Logical) (interface{}, error)
	VisitVariableExpr(e *Variable) (interface{}, error)
	VisitAssignExpr(e *Assign) (interface{}, error)
	VisitCallExpr(e *Call) (interface{}, error)
}

// Expr is any expression node.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// Literal is a bare value appearing in source: a number, string,
// boolean, or nil.
type Literal struct {
	Value interface{}
}

func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// Grouping is a parenthesized expression; it exists as its own node
// (rather than being folded away at parse time) so the --debug-ast
// dump and any future pass can tell "(1)" apart from "1".
type Grouping struct {
	Inner Expr
}

func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// Unary is a prefix operator: "!"" or "-"".
type Unary struct {
	Op    token.Token
	Right Expr
}

func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// Binary is an infix arithmetic, comparison, or equality operator.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// Logical is "and"/"or", kept distinct from Binary because both
// operators short-circuit and never coerce their result to bool.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// Variable is a bare identifier reference, resolved against the
// environment chain at evaluation time.
type Variable struct {
	Name token.Token
}

func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// Assign is "name = value"; its own result is the assigned value.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// Call is a function invocation. ClosingParen is kept for its line
// number, used to report arity-mismatch and "not callable" errors at
// a sensible source location.
type Call struct {
	Callee       Expr
	ClosingParen token.Token
	Args         []Expr
}

func (e *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }
