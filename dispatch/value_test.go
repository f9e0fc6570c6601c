//nolint:testpackage // using package name 'dispatch' to access unexported fields for testing
package dispatch

import "testing"

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		text     string
		want     Value
		wantFail ErrorType
	}{
		{name: "string verbatim", kind: KindString, text: " spaced ", want: String(" spaced ")},
		{name: "int plain", kind: KindInt, text: "42", want: Int(42)},
		{name: "int negative", kind: KindInt, text: "-7", want: Int(-7)},
		{name: "int explicit plus", kind: KindInt, text: "+7", want: Int(7)},
		{name: "int max", kind: KindInt, text: "9223372036854775807", want: Int(9223372036854775807)},
		{name: "int overflow", kind: KindInt, text: "9223372036854775808", wantFail: ErrorTypeInvalidInt},
		{name: "int hex rejected", kind: KindInt, text: "0xFF", wantFail: ErrorTypeInvalidInt},
		{name: "int underscores rejected", kind: KindInt, text: "1_000", wantFail: ErrorTypeInvalidInt},
		{name: "int empty", kind: KindInt, text: "", wantFail: ErrorTypeInvalidInt},
		{name: "float plain", kind: KindFloat, text: "2.5", want: Float(2.5)},
		{name: "float scientific", kind: KindFloat, text: "1e6", want: Float(1e6)},
		{name: "float negative", kind: KindFloat, text: "-0.25", want: Float(-0.25)},
		{name: "float garbage", kind: KindFloat, text: "fast", wantFail: ErrorTypeInvalidFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errType := coerceValue(tt.kind, tt.text)
			if tt.wantFail != "" {
				if errType != tt.wantFail {
					t.Fatalf("Expected failure %s, got %q (value %+v)", tt.wantFail, errType, got)
				}
				return
			}
			if errType != "" {
				t.Fatalf("Unexpected failure %s", errType)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestValueConstructorsFixKind(t *testing.T) {
	tests := []struct {
		v    Value
		kind Kind
	}{
		{Bool(true), KindBool},
		{String("x"), KindString},
		{Int(1), KindInt},
		{Float(1.5), KindFloat},
	}
	for _, tt := range tests {
		if tt.v.Kind() != tt.kind {
			t.Errorf("Expected kind %s, got %s", tt.kind, tt.v.Kind())
		}
	}
}

func TestValueSetIdentityKeys(t *testing.T) {
	// Two distinct options sharing a long name are distinct identities.
	a := &Option{Name: "out", Value: String("")}
	b := &Option{Name: "out", Value: String("")}

	set := newValueSet()
	set.set(a, String("first"))
	set.set(b, String("second"))

	if set.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", set.Len())
	}
	if v, _ := set.Get(a); v.StringVal() != "first" {
		t.Errorf("Expected 'first' for a, got %q", v.StringVal())
	}
	if v, _ := set.Get(b); v.StringVal() != "second" {
		t.Errorf("Expected 'second' for b, got %q", v.StringVal())
	}
	if _, ok := set.Get(&Option{Name: "out"}); ok {
		t.Error("Unrelated option must not resolve")
	}
}
