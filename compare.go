package checkmate

import (
	"reflect"
	"strings"
)

// compareOrdered compares two operands for the ordered relation catalog.
// Integers compare with integers, floats with floats (integers widen), and
// strings with strings; any other combination is unordered and every
// ordered relation fails for it. The result follows strings.Compare
// conventions.
func compareOrdered(v, o any) (int, bool) {
	a := reflect.ValueOf(v)
	b := reflect.ValueOf(o)
	if !a.IsValid() || !b.IsValid() {
		return 0, false
	}
	if a.Kind() == reflect.String && b.Kind() == reflect.String {
		return strings.Compare(a.String(), b.String()), true
	}
	if isIntLike(a.Kind()) && isIntLike(b.Kind()) {
		return cmpInt(a, b), true
	}
	if isNumeric(a.Kind()) && isNumeric(b.Kind()) {
		return cmp(toFloat64(a), toFloat64(b)), true
	}
	return 0, false
}

// cmpInt compares integer operands by sign first, then by magnitude as
// uint64, so unsigned values above the int64 range never wrap negative.
func cmpInt(a, b reflect.Value) int {
	aNeg := isSignedInt(a.Kind()) && a.Int() < 0
	bNeg := isSignedInt(b.Kind()) && b.Int() < 0
	switch {
	case aNeg && !bNeg:
		return -1
	case !aNeg && bNeg:
		return 1
	case aNeg && bNeg:
		return cmp(a.Int(), b.Int())
	}
	return cmp(magnitude(a), magnitude(b))
}

// magnitude returns the value as uint64; callers ensure it is non-negative.
func magnitude(v reflect.Value) uint64 {
	if isSignedInt(v.Kind()) {
		return uint64(v.Int())
	}
	return v.Uint()
}

func cmp[N int64 | uint64 | float64](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isIntLike(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return isSignedInt(k)
	}
}

func isSignedInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isNumeric(k reflect.Kind) bool {
	return isIntLike(k) || k == reflect.Float32 || k == reflect.Float64
}

func toFloat64(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return 0
	}
}
