package checkmate

import (
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Built-in test catalog. Every value is a process-wide singleton; the
// message registry keys its formatters off these exact instances, so a
// structurally identical test built elsewhere is a different test.
var (
	// Null passes when the subject is nil, including typed nil pointers,
	// maps, slices, channels and functions.
	Null = NewPredicate("null", isNil)

	// NotNull is the complement of Null.
	NotNull = NewPredicate("notNull", func(v any) bool { return !isNil(v) })

	// Empty passes for nil subjects, empty strings and zero-length
	// collections.
	Empty = NewPredicate("empty", isEmpty)

	// NotEmpty is the complement of Empty.
	NotEmpty = NewPredicate("notEmpty", func(v any) bool { return !isEmpty(v) })

	// Blank passes for strings that are empty or whitespace-only. Non-string
	// subjects are never blank.
	Blank = NewPredicate("blank", isBlank)

	// Zero passes when the subject is nil or its type's zero value.
	Zero = NewPredicate("zero", func(v any) bool {
		return v == nil || reflect.ValueOf(v).IsZero()
	})

	// Positive and Negative apply to numeric subjects only.
	Positive = NewPredicate("positive", func(v any) bool {
		n, ok := compareOrdered(v, 0)
		return ok && n > 0
	})
	Negative = NewPredicate("negative", func(v any) bool {
		n, ok := compareOrdered(v, 0)
		return ok && n < 0
	})

	// ValidJSON passes for string or []byte subjects holding well-formed
	// JSON.
	ValidJSON = NewPredicate("validJSON", func(v any) bool {
		b, ok := rawBytes(v)
		return ok && json.Valid(b)
	})

	// ValidYAML passes for string or []byte subjects parseable as YAML.
	ValidYAML = NewPredicate("validYAML", func(v any) bool {
		b, ok := rawBytes(v)
		if !ok {
			return false
		}
		var out any
		return yaml.Unmarshal(b, &out) == nil
	})

	// EQ passes when subject and target are deeply equal; NE is its
	// complement.
	EQ = NewRelation("equalTo", func(v, o any) bool { return reflect.DeepEqual(v, o) })
	NE = NewRelation("notEqualTo", func(v, o any) bool { return !reflect.DeepEqual(v, o) })

	// Ordered comparisons; see compareOrdered for the coercion rules.
	// Complements: LT/GE and GT/LE.
	LT = NewRelation("lessThan", func(v, o any) bool {
		n, ok := compareOrdered(v, o)
		return ok && n < 0
	})
	LE = NewRelation("atMost", func(v, o any) bool {
		n, ok := compareOrdered(v, o)
		return ok && n <= 0
	})
	GT = NewRelation("greaterThan", func(v, o any) bool {
		n, ok := compareOrdered(v, o)
		return ok && n > 0
	})
	GE = NewRelation("atLeast", func(v, o any) bool {
		n, ok := compareOrdered(v, o)
		return ok && n >= 0
	})

	// SameAs passes when subject and target are the same object (reference
	// identity, not equality); NotSameAs is its complement.
	SameAs    = NewRelation("sameAs", sameRef)
	NotSameAs = NewRelation("notSameAs", func(v, o any) bool { return !sameRef(v, o) })

	// Contains passes when a slice or array has an element deeply equal to
	// the target, a map has the target as a key, or a string has the target
	// as a substring.
	Contains = NewRelation("contains", containsElem)
)

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isEmpty(v any) bool {
	if isNil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	}
	return false
}

func isBlank(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func rawBytes(v any) ([]byte, bool) {
	switch x := v.(type) {
	case string:
		return []byte(x), true
	case []byte:
		return x, true
	}
	return nil, false
}

func sameRef(v, o any) bool {
	if v == nil || o == nil {
		return v == nil && o == nil
	}
	a := reflect.ValueOf(v)
	b := reflect.ValueOf(o)
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		// Same backing array and length; value semantics make anything
		// stronger meaningless for slices.
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	}
	return false
}

func containsElem(v, o any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		s, ok := o.(string)
		return ok && strings.Contains(rv.String(), s)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if reflect.DeepEqual(rv.Index(i).Interface(), o) {
				return true
			}
		}
		return false
	case reflect.Map:
		if o == nil {
			return false
		}
		ov := reflect.ValueOf(o)
		if !ov.Type().AssignableTo(rv.Type().Key()) {
			return false
		}
		return rv.MapIndex(ov).IsValid()
	}
	return false
}
