package attr

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/matzehuels/dotwalk/pkg/errors"
)

// Format validates value against the type key has in grammar and returns
// its DOT representation.
func Format(kind Kind, grammar Grammar, key string, value any) (string, error) {
	t, ok := grammar[key]
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownAttribute, "unknown %s attribute %q", kind, key)
	}
	s, ok := formatValue(t, value)
	if !ok {
		return "", errors.New(errors.ErrCodeTypeMismatch,
			"%s attribute %q: value %#v is not %s", kind, key, value, t)
	}
	return s, nil
}

func formatValue(t Type, value any) (string, bool) {
	switch t.Base {
	case Integer:
		return formatInteger(value)
	case Boolean:
		return strconv.FormatBool(truthy(value)), true
	case Text:
		return formatText(value)
	case Float:
		return formatFloat(value)
	case Enumeration:
		if !t.Has(value) {
			return "", false
		}
		if s, ok := value.(Symbol); ok {
			return strings.ToLower(string(s)), true
		}
		return fmt.Sprint(value), true
	}
	return "", false
}

func formatInteger(value any) (string, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), true
	}
	return "", false
}

func formatFloat(value any) (string, bool) {
	var f float32
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f = float32(v.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float32(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float32(v.Uint())
	default:
		return "", false
	}
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return "", false
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 32), true
}

func formatText(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	if v := reflect.ValueOf(value); v.Kind() == reflect.String {
		return Quote(v.String()), true
	}
	if s, ok := value.(fmt.Stringer); ok {
		return Quote(s.String()), true
	}
	return "", false
}

// truthy is false for nil and false, true for every other value.
func truthy(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

var quoteReplacer = strings.NewReplacer(`"`, `\"`, "\n", `\n`)

// Quote wraps s in double quotes, escaping embedded double quotes and
// newlines. Every other character, backslash included, is kept as is.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
