package msg

import (
	"fmt"
	"strings"
)

// The first five positions of a template's argument vector hold the
// well-known values; caller-supplied extras start at position 5.
const wellKnownCount = 5

// Format substitutes ${...} tokens in tmpl against args and returns the
// result. Recognized token bodies are the names test, arg, type, name and
// obj (positions 0-4 of args) and non-negative integers n (position n+5).
//
// Format is total over all inputs: a bare '$', an unterminated token at the
// end of input, an unknown body, and an out-of-range position are all
// copied through verbatim rather than reported as errors.
func Format(tmpl string, args []any) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); {
		if tmpl[i] != '$' || i+1 >= len(tmpl) || tmpl[i+1] != '{' {
			b.WriteByte(tmpl[i])
			i++
			continue
		}
		end := strings.IndexByte(tmpl[i+2:], '}')
		if end < 0 {
			// Unterminated token: keep the rest untouched.
			b.WriteString(tmpl[i:])
			break
		}
		body := tmpl[i+2 : i+2+end]
		if idx, ok := tokenIndex(body); ok && idx < len(args) {
			b.WriteString(toStr(args[idx]))
		} else {
			// Unknown name, bad integer or out-of-range position: preserve
			// the token literally so broken templates stay debuggable.
			b.WriteString(tmpl[i : i+2+end+1])
		}
		i += 2 + end + 1
	}
	return b.String()
}

func tokenIndex(body string) (int, bool) {
	switch body {
	case "test":
		return 0, true
	case "arg":
		return 1, true
	case "type":
		return 2, true
	case "name":
		return 3, true
	case "obj":
		return 4, true
	}
	n, ok := parseIndex(body)
	if !ok {
		return 0, false
	}
	return n + wellKnownCount, true
}

// parseIndex parses a non-negative base-10 integer. Unlike strconv.Atoi it
// rejects signs and surrounding whitespace, which must stay unresolved per
// the token grammar. Bodies too long to index any realistic vector are
// rejected before they can overflow.
func parseIndex(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func toStr(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	}
	return fmt.Sprint(v)
}
