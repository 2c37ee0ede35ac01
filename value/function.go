/*
File   : ash/value/function.go
Package: value
*/
package value

import (
	"github.com/ash-lang/ash/ast"
	"github.com/ash-lang/ash/environment"
)

// Function wraps a user-defined function declaration as a callable
// value. A function value is first-class: storing it in a variable
// (as `print add;` does) keeps it alive independent of the
// declaration's lexical position.
//
// Known limitation (preserved deliberately, not a bug to fix here):
// Call parents its fresh call-frame environment on the interpreter's
// global environment, not on the environment that was active where
// the function was declared. A function declared inside a block
// therefore cannot close over that block's locals — only globals and
// its own parameters are visible inside the body. A correct
// implementation would instead capture the defining environment at
// Function-statement execution time and parent the call frame on
// that; this specification deliberately keeps the simpler, broken
// behavior for parity with the revision it describes.
type Function struct {
	Decl *ast.FunctionStmt
}

// Arity is the declared parameter count.
func (f *Function) Arity() int { return len(f.Decl.Params) }

// Call binds each argument to its parameter name in a new
// environment parented on the interpreter's globals, then executes
// the function body in that environment. User functions always
// evaluate to nil: this revision implements no `return` statement.
func (f *Function) Call(interp Interpreter, args []Value) (Value, error) {
	env := environment.NewEnclosed(interp.Globals())
	for i, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[i])
	}
	if err := interp.ExecuteBlock(f.Decl.Body, env); err != nil {
		return nil, err
	}
	return nil, nil
}

// String renders as "<fn NAME>", per the specification.
func (f *Function) String() string {
	return "<fn " + f.Decl.Name.Lexeme + ">"
}
