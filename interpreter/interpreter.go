/*
File   : ash/interpreter/interpreter.go
Package: interpreter

Package interpreter walks the ast.Expr/ast.Stmt trees produced by the
parser, mutating environments and producing output (through Print)
and runtime errors. It implements both ast.ExprVisitor and
ast.StmtVisitor, so each node variant is dispatched to exactly one
method here — the evaluator's half of the "open operation" contract
the AST package defines.

State is deliberately minimal: one `environment` field, the currently
active scope, always reachable from a single `globals` environment
created at construction and seeded with the native `clock` function.
*/
package interpreter

import (
	"io"
	"os"
	"time"

	"github.com/ash-lang/ash/ast"
	"github.com/ash-lang/ash/environment"
	"github.com/ash-lang/ash/internal/errs"
	"github.com/ash-lang/ash/token"
	"github.com/ash-lang/ash/value"
)

// Interpreter walks a parsed program, evaluating expressions and
// executing statements against its environment chain. It is not safe
// for concurrent use; independent Interpreter values are fully
// independent of one another.
type Interpreter struct {
	globals     *environment.Environment
	environment *environment.Environment
	out         io.Writer
	report      *errs.Reporter
}

// New creates an Interpreter writing Print output to os.Stdout and
// seeds its global environment with the native clock() builtin.
func New(report *errs.Reporter) *Interpreter {
	globals := environment.New()
	interp := &Interpreter{
		globals:     globals,
		environment: globals,
		out:         os.Stdout,
		report:      report,
	}
	interp.defineNatives()
	return interp
}

// SetOutput redirects Print statement output, used by tests and by
// the REPL to capture output per line.
func (i *Interpreter) SetOutput(w io.Writer) {
	i.out = w
}

// Globals satisfies value.Interpreter: every user function call frame
// parents on this environment (see value.Function's doc comment for
// the closure limitation this preserves).
func (i *Interpreter) Globals() *environment.Environment {
	return i.globals
}

// nativeTable lists every builtin the interpreter seeds into globals.
// Structured as a registration table, not a single hardcoded Define
// call, so adding a native later is a one-line append here rather
// than new plumbing — mirroring the teacher's std/ builtin-family
// tables even though the language's Non-goals keep this table at one
// entry (clock) for now.
var nativeTable = []struct {
	name string
	arg  int
	fn   value.NativeFunctionImpl
}{
	{"clock", 0, func(_ value.Interpreter, _ []value.Value) (value.Value, error) {
		return float64(time.Now().UnixNano()) / float64(time.Second), nil
	}},
}

func (i *Interpreter) defineNatives() {
	for _, n := range nativeTable {
		i.globals.Define(n.name, &value.NativeFunction{Name: n.name, Arg: n.arg, Fn: n.fn})
	}
}

// Interpret executes a parsed program. Runtime errors are reported to
// the configured errs.Reporter and stop execution of the remaining
// top-level statements, matching the specification's "unwind to the
// top-level interpret call" behavior; a REPL keeps running on the
// next line regardless.
func (i *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			if rerr, ok := err.(*errs.RuntimeErr); ok {
				i.report.RuntimeError(rerr)
				return
			}
			i.report.RuntimeError(&errs.RuntimeErr{Line: 0, Message: err.Error()})
			return
		}
	}
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.Accept(i)
}

func (i *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	return expr.Accept(i)
}

// ExecuteBlock satisfies value.Interpreter: it runs statements against
// env, always restoring the interpreter's previous environment on
// every exit path — normal completion and error propagation alike.
func (i *Interpreter) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := i.environment
	i.environment = env
	defer func() { i.environment = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- ast.StmtVisitor ---

func (i *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := i.evaluate(s.Expression)
	return err
}

func (i *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := i.evaluate(s.Expression)
	if err != nil {
		return err
	}
	io.WriteString(i.out, value.Stringify(v)+"\n")
	return nil
}

func (i *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	var v value.Value
	if s.Initializer != nil {
		var err error
		v, err = i.evaluate(s.Initializer)
		if err != nil {
			return err
		}
	}
	i.environment.Define(s.Name.Lexeme, v)
	return nil
}

func (i *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return i.ExecuteBlock(s.Statements, environment.NewEnclosed(i.environment))
}

func (i *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := i.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if value.IsTruthy(cond) {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return nil
}

func (i *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !value.IsTruthy(cond) {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			return err
		}
	}
}

func (i *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	fn := &value.Function{Decl: s}
	i.environment.Define(s.Name.Lexeme, fn)
	return nil
}

// --- ast.ExprVisitor ---

func (i *Interpreter) VisitLiteralExpr(e *ast.Literal) (value.Value, error) {
	return e.Value, nil
}

func (i *Interpreter) VisitGroupingExpr(e *ast.Grouping) (value.Value, error) {
	return i.evaluate(e.Inner)
}

func (i *Interpreter) VisitUnaryExpr(e *ast.Unary) (value.Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeErr(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !value.IsTruthy(right), nil
	}
	return nil, nil
}

func (i *Interpreter) VisitBinaryExpr(e *ast.Binary) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErr(e.Op, "Operands must be two numbers or two strings.")
	case token.MINUS:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case token.STAR:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case token.SLASH:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil
	case token.GREATER:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil
	case token.GREATER_EQUAL:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil
	case token.LESS:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil
	case token.LESS_EQUAL:
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil
	case token.EQUAL_EQUAL:
		return value.IsEqual(left, right), nil
	case token.BANG_EQUAL:
		return !value.IsEqual(left, right), nil
	}
	return nil, nil
}

func (i *Interpreter) VisitLogicalExpr(e *ast.Logical) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) VisitVariableExpr(e *ast.Variable) (value.Value, error) {
	return i.environment.Get(e.Name.Lexeme, e.Name.Line)
}

func (i *Interpreter) VisitAssignExpr(e *ast.Assign) (value.Value, error) {
	v, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := i.environment.Assign(e.Name.Lexeme, v, e.Name.Line); err != nil {
		return nil, err
	}
	return v, nil
}

func (i *Interpreter) VisitCallExpr(e *ast.Call) (value.Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(value.Callable)
	if !ok {
		return nil, runtimeErr(e.ClosingParen, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErr(e.ClosingParen, arityMessage(fn.Arity(), len(args)))
	}
	return fn.Call(i, args)
}

func numberOperands(op token.Token, left, right value.Value) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, runtimeErr(op, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func runtimeErr(op token.Token, message string) error {
	return &errs.RuntimeErr{Line: op.Line, Message: message}
}
