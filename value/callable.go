/*
File   : ash/value/callable.go
Package: value
*/
package value

import (
	"github.com/ash-lang/ash/ast"
	"github.com/ash-lang/ash/environment"
)

// Interpreter is the slice of interpreter behavior a Callable needs
// to invoke itself: access to the global environment (every user
// function's call frame parents on it — see Function.Call) and the
// ability to execute a function body's statements in a fresh child
// environment. Declaring it here, rather than importing the concrete
// interpreter type, keeps value free of a dependency on interpreter
// (which itself depends on value for the Value domain).
type Interpreter interface {
	Globals() *environment.Environment
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error
}

// Callable is any value that can appear as the callee of a Call
// expression.
type Callable interface {
	Arity() int
	Call(interp Interpreter, args []Value) (Value, error)
	String() string
}

// NativeFunctionImpl is the Go function a NativeFunction delegates to.
type NativeFunctionImpl func(interp Interpreter, args []Value) (Value, error)

// NativeFunction wraps a host-language function as an Ash callable —
// Ash's only builtin, `clock`, is constructed this way.
type NativeFunction struct {
	Name string
	Arg  int
	Fn   NativeFunctionImpl
}

func (n *NativeFunction) Arity() int { return n.Arg }

func (n *NativeFunction) Call(interp Interpreter, args []Value) (Value, error) {
	return n.Fn(interp, args)
}

// String renders every native function identically, per the
// specification's stringification rule for builtins.
func (n *NativeFunction) String() string { return "<native fn>" }
