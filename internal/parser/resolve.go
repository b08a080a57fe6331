package parser

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
)

// ResolveString turns a value into message text. Strings pass through, slices
// and arrays are joined with ", ", nil becomes the empty string and everything
// else uses its default format.
func ResolveString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = ResolveString(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	case reflect.Func:
		if rv.IsNil() {
			return ""
		}
		return fmt.Sprintf("func %s", rv.Type())
	}
	return fmt.Sprint(value)
}

// isStringified reports whether value is sent as plain message content
// rather than decoded as a message object.
func isStringified(value any) bool {
	if value == nil {
		return true
	}
	switch value.(type) {
	case string, []byte, *big.Int, *big.Float, *big.Rat:
		return true
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Func, reflect.Slice, reflect.Array:
		return true
	}
	return false
}
