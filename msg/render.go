package msg

import (
	"fmt"
	"hash/fnv"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/klojang4j/checkmate/internal/typename"
)

const (
	// Strings and other textual renderings are cut off beyond this many
	// characters.
	maxStringLen = 40
	// Collections render at most this many elements.
	maxElems = 10

	ellipsis = "..."
)

// Render produces a bounded, human-readable rendering of v for use inside
// failure messages. Nil values of any kind render as "null"; long strings
// are ellipsis-truncated; collections render a bounded element listing
// tagged with the collection's identity; values without a natural textual
// form render as "<type>@<tag>" where the tag is identity-derived, so two
// equal but distinct instances render differently.
func Render(v any) string {
	if v == nil {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return "null"
		}
	}
	// Collections always render in collection form, even when the type
	// carries its own String method.
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return renderSeq(rv)
	case reflect.Map:
		return renderMap(rv)
	}
	switch x := v.(type) {
	case string:
		return ellipsify(x)
	case bool:
		return strconv.FormatBool(x)
	case error:
		return ellipsify(x.Error())
	case fmt.Stringer:
		return ellipsify(x.String())
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.String:
		return ellipsify(rv.String())
	}
	return opaque(rv)
}

func ellipsify(s string) string {
	if utf8.RuneCountInString(s) <= maxStringLen {
		return s
	}
	// Cut on a rune boundary; a byte slice could split a multi-byte rune
	// and leak invalid UTF-8 into the message.
	n := 0
	for i := range s {
		if n == maxStringLen {
			return s[:i] + ellipsis
		}
		n++
	}
	return s
}

func renderSeq(rv reflect.Value) string {
	var b strings.Builder
	b.WriteString(typename.Simple(rv.Type()))
	b.WriteByte('@')
	b.WriteString(identityTag(rv))
	b.WriteString(": [")
	n := rv.Len()
	lim := n
	if lim > maxElems {
		lim = maxElems
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Render(rv.Index(i).Interface()))
	}
	if n > lim {
		b.WriteString(ellipsis)
	}
	b.WriteByte(']')
	return b.String()
}

func renderMap(rv reflect.Value) string {
	var b strings.Builder
	b.WriteString(typename.Simple(rv.Type()))
	b.WriteByte('@')
	b.WriteString(identityTag(rv))
	b.WriteString(": [")
	it := rv.MapRange()
	i := 0
	for it.Next() {
		if i == maxElems {
			b.WriteString(ellipsis)
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Render(it.Key().Interface()))
		b.WriteByte('=')
		b.WriteString(Render(it.Value().Interface()))
		i++
	}
	b.WriteByte(']')
	return b.String()
}

func opaque(rv reflect.Value) string {
	return typename.Simple(rv.Type()) + "@" + identityTag(rv)
}

// identityTag derives a short hex tag for a value. Reference kinds use
// their address, so distinct instances with equal contents get distinct
// tags. Value kinds carry no address identity in Go; they fall back to a
// hash of the formatted form.
func identityTag(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return strconv.FormatUint(uint64(rv.Pointer()), 16)
	}
	h := fnv.New32a()
	fmt.Fprintf(h, "%v", rv.Interface())
	return strconv.FormatUint(uint64(h.Sum32()), 16)
}
