// Package typename renders short display names for Go types, used when a
// failure message refers to a value by its type rather than by an explicit
// argument name.
package typename

import (
	"reflect"
	"strconv"
	"strings"
)

// Simple returns a short display name for t: the bare type name without its
// package path. Composite kinds keep their syntax with element names
// shortened, e.g. "[]OrderItem", "map[string]int", "*User".
func Simple(t reflect.Type) string {
	if t == nil {
		return ""
	}
	// A named type keeps its name even for composite kinds.
	if n := t.Name(); n != "" {
		return n
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + Simple(t.Elem())
	case reflect.Slice:
		return "[]" + Simple(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + Simple(t.Elem())
	case reflect.Map:
		return "map[" + Simple(t.Key()) + "]" + Simple(t.Elem())
	case reflect.Chan:
		return "chan " + Simple(t.Elem())
	}
	// Unnamed struct/func/interface types: strip package qualifiers from the
	// full rendering as a best effort.
	s := t.String()
	if i := strings.LastIndexByte(s, '.'); i >= 0 && !strings.ContainsAny(s, "[]{}*() ") {
		return s[i+1:]
	}
	return s
}

// Of is shorthand for Simple(reflect.TypeOf(v)). A nil v yields "".
func Of(v any) string {
	if v == nil {
		return ""
	}
	return Simple(reflect.TypeOf(v))
}
