package params

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)

// normalize converts an assigned value into its stored form: a scalar or a
// fresh []any of scalars. Typed strings become string, typed integers int64
// or uint64. The second result is false for values a request cannot carry.
func normalize(value any) (any, bool) {
	if scalar, ok := normalizeScalar(value); ok {
		return scalar, true
	}
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		scalar, ok := normalizeScalar(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		out[i] = scalar
	}
	return out, true
}

func normalizeScalar(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string, bool, decimal.Decimal,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v, true
	case json.Number:
		return v, jsonNumber.MatchString(string(v))
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		f := float64(v)
		return v, !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		if rv.Kind() == reflect.Float32 {
			return float32(f), true
		}
		return f, true
	}
	return nil, false
}

// isEmpty reports whether a stored value counts as absent for a required
// field: nil, "", zero numbers, false and empty sequences.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case []any:
		return len(v) == 0
	case json.Number:
		f, err := strconv.ParseFloat(string(v), 64)
		return err == nil && f == 0
	case decimal.Decimal:
		return v.IsZero()
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// Stringify renders a field value the way it enters the signature string.
// Integers and their string forms render identically, so 1 and "1" sign
// the same.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case json.Number:
		return v.String()
	case decimal.Decimal:
		return v.String()
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case fmt.Stringer:
		return v.String()
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return Stringify(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	}
	return fmt.Sprint(value)
}

// formatFloat uses the shortest round-trip digits, keeps ".0" on whole
// numbers and switches to exponent form below 1e-4 and from 1e16 up.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	exponent := strconv.FormatFloat(f, 'e', -1, bitSize)
	if f != 0 {
		exp, err := strconv.Atoi(exponent[strings.IndexByte(exponent, 'e')+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return exponent
		}
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
