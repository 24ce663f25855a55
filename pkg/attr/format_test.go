package attr

import (
	"strings"
	"testing"

	"github.com/matzehuels/dotwalk/pkg/errors"
)

type stringer struct{}

func (stringer) String() string { return "from stringer" }

func TestFormat(t *testing.T) {
	grammar := Grammar{
		"count":   IntegerType,
		"visible": BooleanType,
		"label":   TextType,
		"width":   FloatType,
		"rankdir": Symbols("tb", "lr"),
		"level":   Enum(1, 2, "auto"),
	}

	tests := []struct {
		name  string
		key   string
		value any
		want  string
	}{
		{"int", "count", 42, "42"},
		{"negative int64", "count", int64(-7), "-7"},
		{"uint8", "count", uint8(255), "255"},
		{"true", "visible", true, "true"},
		{"false", "visible", false, "false"},
		{"nil is false", "visible", nil, "false"},
		{"non-bool is true", "visible", "no", "true"},
		{"zero is true", "visible", 0, "true"},
		{"text", "label", "hello", `"hello"`},
		{"named string", "label", Symbol("sym"), `"sym"`},
		{"stringer", "label", stringer{}, `"from stringer"`},
		{"float", "width", 1.5, "1.5"},
		{"float from int", "width", 3, "3"},
		{"float narrowed", "width", 0.1, "0.1"},
		{"float32", "width", float32(2.25), "2.25"},
		{"symbol", "rankdir", Symbol("lr"), "lr"},
		{"int member", "level", 2, "2"},
		{"string member", "level", "auto", "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(KindNode, grammar, tt.key, tt.value)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_SymbolIsLowercased(t *testing.T) {
	grammar := Grammar{"dir": Enum(Symbol("Both"))}
	got, err := Format(KindEdge, grammar, "dir", Symbol("Both"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "both" {
		t.Errorf("Format() = %q, want both", got)
	}
}

func TestFormat_Errors(t *testing.T) {
	grammar := Grammar{
		"count":   IntegerType,
		"label":   TextType,
		"width":   FloatType,
		"rankdir": Symbols("tb", "lr"),
	}

	tests := []struct {
		name  string
		key   string
		value any
		code  errors.Code
	}{
		{"unknown key", "colour", "red", errors.ErrCodeUnknownAttribute},
		{"integer given text", "count", "42", errors.ErrCodeTypeMismatch},
		{"integer given float", "count", 4.2, errors.ErrCodeTypeMismatch},
		{"integer given bool", "count", true, errors.ErrCodeTypeMismatch},
		{"text given int", "label", 5, errors.ErrCodeTypeMismatch},
		{"text given nil", "label", nil, errors.ErrCodeTypeMismatch},
		{"float given text", "width", "1.5", errors.ErrCodeTypeMismatch},
		{"float NaN", "width", nan(), errors.ErrCodeTypeMismatch},
		{"enum non-member", "rankdir", Symbol("diagonal"), errors.ErrCodeTypeMismatch},
		{"enum string is not symbol", "rankdir", "lr", errors.ErrCodeTypeMismatch},
		{"enum case matters", "rankdir", Symbol("LR"), errors.ErrCodeTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Format(KindGraph, grammar, tt.key, tt.value)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Format() error = %v, want %s", err, tt.code)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name key %q", err, tt.key)
			}
		})
	}
}

func TestFormat_UnknownKeyForEveryKind(t *testing.T) {
	g := Default()
	for _, k := range []Kind{KindGraph, KindNode, KindEdge} {
		_, err := Format(k, g.For(k), "no-such-attribute", "x")
		if !errors.Is(err, errors.ErrCodeUnknownAttribute) {
			t.Errorf("%s: error = %v, want UNKNOWN_ATTRIBUTE", k, err)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", `"abc"`},
		{"empty", "", `""`},
		{"double quote", `say "hi"`, `"say \"hi\""`},
		{"newline", "a\nb", `"a\nb"`},
		{"backslash kept", `left\l`, `"left\l"`},
		{"all together", "a\"b\nc\\d", `"a\"b\nc\d"`},
		{"tab kept", "a\tb", "\"a\tb\""},
		{"unicode", "héllo", `"héllo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.in); got != tt.want {
				t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}
