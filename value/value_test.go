/*
File   : ash/value/value_test.go
Package: value
*/
package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil is falsey", nil, false},
		{"false is falsey", false, false},
		{"true is truthy", true, true},
		{"zero is truthy", 0.0, true},
		{"empty string is truthy", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsTruthy(tc.v))
		})
	}
}

func TestIsEqual(t *testing.T) {
	assert.True(t, IsEqual(nil, nil))
	assert.False(t, IsEqual(nil, false))
	assert.False(t, IsEqual(false, nil))
	assert.True(t, IsEqual(1.0, 1.0))
	assert.False(t, IsEqual(1.0, 2.0))
	assert.True(t, IsEqual("a", "a"))
	assert.False(t, IsEqual("a", "b"))
	assert.True(t, IsEqual(true, true))
}

func TestIsEqual_NaNNeverEqual(t *testing.T) {
	nan := math.NaN()
	assert.False(t, IsEqual(nan, nan))
}

func TestIsEqual_NoCrossTypeNumberStringCheck(t *testing.T) {
	// Equality never errors and never requires both operands be the
	// same Go-level type beyond what == itself demands; comparing a
	// number to a string is simply false, not a runtime error.
	assert.False(t, IsEqual(1.0, "1"))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "nil", Stringify(nil))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "false", Stringify(false))
	assert.Equal(t, "hello", Stringify("hello"))
	assert.Equal(t, "3", Stringify(3.0))
	assert.Equal(t, "3.5", Stringify(3.5))
}

func TestStringify_NonFiniteNumbers(t *testing.T) {
	assert.Equal(t, "Infinity", Stringify(math.Inf(1)))
	assert.Equal(t, "-Infinity", Stringify(math.Inf(-1)))
	assert.Equal(t, "NaN", Stringify(math.NaN()))
}

func TestStringify_Callable(t *testing.T) {
	nf := &NativeFunction{Name: "clock", Arg: 0}
	assert.Equal(t, "<native fn>", Stringify(nf))
}
