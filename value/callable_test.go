/*
File   : ash/value/callable_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ash-lang/ash/ast"
	"github.com/ash-lang/ash/environment"
	"github.com/ash-lang/ash/token"
)

// fakeInterpreter is a minimal value.Interpreter test double: it
// records the environment ExecuteBlock was called with and lets the
// test script what Globals() returns, without depending on the
// interpreter package (which would cycle back to value).
type fakeInterpreter struct {
	globals    *environment.Environment
	lastEnv    *environment.Environment
	executeErr error
}

func (f *fakeInterpreter) Globals() *environment.Environment { return f.globals }

func (f *fakeInterpreter) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error {
	f.lastEnv = env
	return f.executeErr
}

func TestNativeFunction_ArityAndCall(t *testing.T) {
	nf := &NativeFunction{
		Name: "double",
		Arg:  1,
		Fn: func(interp Interpreter, args []Value) (Value, error) {
			return args[0].(float64) * 2, nil
		},
	}
	assert.Equal(t, 1, nf.Arity())
	assert.Equal(t, "<native fn>", nf.String())

	result, err := nf.Call(&fakeInterpreter{}, []Value{3.0})
	require.NoError(t, err)
	assert.Equal(t, 6.0, result)
}

func TestFunction_Arity(t *testing.T) {
	decl := &ast.FunctionStmt{
		Name:   token.New(token.IDENTIFIER, "add", 1),
		Params: []token.Token{token.New(token.IDENTIFIER, "a", 1), token.New(token.IDENTIFIER, "b", 1)},
	}
	fn := &Function{Decl: decl}
	assert.Equal(t, 2, fn.Arity())
	assert.Equal(t, "<fn add>", fn.String())
}

func TestFunction_Call_BindsParamsAndReturnsNil(t *testing.T) {
	globals := environment.New()
	decl := &ast.FunctionStmt{
		Name:   token.New(token.IDENTIFIER, "add", 1),
		Params: []token.Token{token.New(token.IDENTIFIER, "a", 1), token.New(token.IDENTIFIER, "b", 1)},
		Body:   nil,
	}
	fn := &Function{Decl: decl}
	interp := &fakeInterpreter{globals: globals}

	result, err := fn.Call(interp, []Value{1.0, 2.0})
	require.NoError(t, err)
	assert.Nil(t, result, "user functions always evaluate to nil")

	a, _ := interp.lastEnv.Get("a", 1)
	b, _ := interp.lastEnv.Get("b", 1)
	assert.Equal(t, 1.0, a)
	assert.Equal(t, 2.0, b)
}

func TestFunction_Call_ParentsOnGlobals_NotDefiningEnvironment(t *testing.T) {
	// A known, deliberately preserved limitation: the call frame
	// parents on the interpreter's globals, never on whatever
	// environment was active when the function was declared.
	globals := environment.New()
	definingEnv := environment.NewEnclosed(globals)
	definingEnv.Define("captured", "should not be visible")

	decl := &ast.FunctionStmt{Name: token.New(token.IDENTIFIER, "f", 1)}
	fn := &Function{Decl: decl}
	interp := &fakeInterpreter{globals: globals}

	_, err := fn.Call(interp, nil)
	require.NoError(t, err)

	assert.Same(t, globals, interp.lastEnv.Enclosing())
	_, getErr := interp.lastEnv.Get("captured", 1)
	assert.Error(t, getErr, "the call frame must not see definingEnv's bindings")
}

func TestFunction_Call_PropagatesExecuteBlockError(t *testing.T) {
	decl := &ast.FunctionStmt{Name: token.New(token.IDENTIFIER, "f", 1)}
	fn := &Function{Decl: decl}
	interp := &fakeInterpreter{globals: environment.New(), executeErr: assert.AnError}

	_, err := fn.Call(interp, nil)
	assert.ErrorIs(t, err, assert.AnError)
}
