/*
File   : ash/ast/stmt.go
Package: ast
*/
package ast

import "github.com/ash-lang/ash/token"

// StmtVisitor is the contract any pass over statements must satisfy:
// exactly one method per Stmt variant.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
}

// Stmt is any statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// ExpressionStmt evaluates its expression for side effects only.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates its expression and writes a stringified line.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, optionally with an initializer.
// Initializer is nil when the declaration has no "= expr" part, in
// which case the variable is bound to nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt is a brace-delimited list of statements executed in a
// fresh child environment.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt is a conditional; Else is nil when there is no else clause.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt is the only looping primitive the parser ever builds
// directly — "for" is desugared into a WhileStmt at parse time.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function: "fun name(params) { body }".
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }
