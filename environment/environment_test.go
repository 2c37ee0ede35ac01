/*
File   : ash/environment/environment_test.go
Package: environment
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", 1.0)

	v, err := env.Get("x", 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestDefine_Redefine_Overwrites(t *testing.T) {
	env := New()
	env.Define("x", 1.0)
	env.Define("x", 2.0)

	v, err := env.Get("x", 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestGet_UndefinedVariable(t *testing.T) {
	env := New()
	_, err := env.Get("missing", 7)
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestGet_WalksEnclosingChain(t *testing.T) {
	global := New()
	global.Define("x", 1.0)
	child := NewEnclosed(global)

	v, err := child.Get("x", 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestAssign_UpdatesNearestBinding(t *testing.T) {
	global := New()
	global.Define("x", 1.0)
	child := NewEnclosed(global)

	require.NoError(t, child.Assign("x", 2.0, 1))

	v, err := global.Get("x", 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v, "assign must update the global binding, not shadow it")
}

func TestAssign_NeverCreatesBinding(t *testing.T) {
	env := New()
	err := env.Assign("ghost", 1.0, 3)
	require.Error(t, err)
	assert.Equal(t, "Undefined Variable 'ghost'.", err.Error())

	_, getErr := env.Get("ghost", 3)
	assert.Error(t, getErr, "a failed assign must not have created a binding")
}

func TestChild_ShadowsParent_WithoutMutatingIt(t *testing.T) {
	global := New()
	global.Define("x", 1.0)
	child := NewEnclosed(global)
	child.Define("x", 2.0)

	childVal, _ := child.Get("x", 1)
	globalVal, _ := global.Get("x", 1)
	assert.Equal(t, 2.0, childVal)
	assert.Equal(t, 1.0, globalVal)
}

func TestEnclosing(t *testing.T) {
	global := New()
	assert.Nil(t, global.Enclosing())
	child := NewEnclosed(global)
	assert.Same(t, global, child.Enclosing())
}
