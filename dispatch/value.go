package dispatch

import "strconv"

// Kind discriminates the type of an option value. The Kind of an option's
// declared default fixes the expected type for the whole parse.
type Kind uint8

const (
	KindBool Kind = iota
	KindString
	KindInt
	KindFloat
)

// String returns the kind name as shown in help output.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value is a tagged union over bool, string, int64 and float64.
// The zero Value is a false bool.
type Value struct {
	kind Kind
	b    bool
	s    string
	i    int64
	f    float64
}

// Bool returns a bool-typed Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String returns a string-typed Value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Int returns an int-typed Value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a float-typed Value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Kind returns the value's type tag.
func (v Value) Kind() Kind { return v.kind }

// BoolVal returns the stored bool. Valid only for KindBool.
func (v Value) BoolVal() bool { return v.b }

// StringVal returns the stored string. Valid only for KindString.
func (v Value) StringVal() string { return v.s }

// IntVal returns the stored int64. Valid only for KindInt.
func (v Value) IntVal() int64 { return v.i }

// FloatVal returns the stored float64. Valid only for KindFloat.
func (v Value) FloatVal() float64 { return v.f }

// coerceValue converts raw option-argument text to a Value of the declared
// kind. KindBool never reaches here: bool options take no argument.
func coerceValue(kind Kind, text string) (Value, ErrorType) {
	switch kind {
	case KindString:
		return String(text), ""
	case KindInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, ErrorTypeInvalidInt
		}
		return Int(i), ""
	case KindFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, ErrorTypeInvalidFloat
		}
		return Float(f), ""
	case KindBool:
		return Bool(true), ""
	default:
		return Value{}, ErrorTypeInvalidCommand
	}
}

// ValueSet holds the option values captured during a single parse, keyed by
// option identity. It is owned by the Result and never shared between parses,
// so the command tree itself stays immutable and reusable.
type ValueSet struct {
	values map[*Option]Value
}

func newValueSet() *ValueSet {
	return &ValueSet{values: make(map[*Option]Value)}
}

func (s *ValueSet) set(opt *Option, v Value) {
	s.values[opt] = v
}

// Get returns the captured value for opt and whether it was present on the
// command line.
func (s *ValueSet) Get(opt *Option) (Value, bool) {
	v, ok := s.values[opt]
	return v, ok
}

// Len returns the number of options captured during the parse.
func (s *ValueSet) Len() int { return len(s.values) }
