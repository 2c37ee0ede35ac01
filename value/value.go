/*
File   : ash/value/value.go
Package: value

Package value defines Ash's runtime value domain — nil, boolean,
number (float64), string, and callable — along with the operations
that are total over that domain: truthiness, equality, and
stringification (section 4.6.1/4.6.2 of the specification this
package implements).

Values are represented with Go's own types rather than a wrapper
struct (nil, bool, float64, string), mirroring the teacher's
GoMixObject union but collapsed to plain host types since Ash's
domain is small enough that a wrapper interface buys nothing but
allocation. The one case that does need a dedicated type is Callable,
implemented by NativeFunction (builtins) and Function (user-defined,
in function.go).
*/
package value

// Value is any Ash runtime value: nil, bool, float64, string, or a
// Callable. The alias exists purely for readability at call sites —
// it carries no behavior of its own.
type Value = interface{}

// IsTruthy implements Ash's truthiness rule: every value is truthy
// except nil and the boolean false.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Ash's equality rule. nil equals only nil;
// otherwise host equality applies (numbers by IEEE-754, so NaN != NaN;
// strings by codepoint; booleans structurally; callables by identity).
//
// Deliberately absent: a type check requiring both operands to be
// numbers before comparing. The reference implementation this
// specification is drawn from has that check on its == and !=
// operators, making "a"=="a" a runtime error — that is treated here
// as a defect in the source material, not a rule to reproduce.
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	ac, aCallable := a.(Callable)
	bc, bCallable := b.(Callable)
	if aCallable || bCallable {
		return aCallable && bCallable && ac == bc
	}
	return a == b
}

// Stringify renders v the way `print` and expression results display
// it. It is total: every value in the domain, including NaN and
// +/-Inf numbers, has a string form and Stringify never errors.
func Stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch t := v.(type) {
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return stringifyNumber(t)
	case string:
		return t
	case Callable:
		return t.String()
	default:
		return "nil"
	}
}

func stringifyNumber(n float64) string {
	text := formatFloat(n)
	if len(text) >= 2 && text[len(text)-2:] == ".0" {
		return text[:len(text)-2]
	}
	return text
}
