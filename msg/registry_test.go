package msg

import (
	"strings"
	"testing"
)

// tkn is a minimal Test implementation with pointer identity.
type tkn struct{ name string }

func (t *tkn) Name() string { return t.name }

func TestRegistry_LookupByIdentity(t *testing.T) {
	even := &tkn{name: "even"}
	other := &tkn{name: "even"} // same name, different instance
	r := NewRegistry([]Entry{
		{Test: even, Format: func(a Args) string { return "even msg" }},
	}, nil)

	if f, ok := r.Lookup(even); !ok || f(Args{}) != "even msg" {
		t.Fatalf("expected formatter for registered instance")
	}
	if _, ok := r.Lookup(other); ok {
		t.Fatalf("identically named but distinct instance must not resolve")
	}
}

func TestRegistry_FallbackMessage(t *testing.T) {
	r := NewRegistry(nil, nil)
	a := NewArgs(&tkn{name: "custom"}, false, "size", 42)
	got := r.Message(a)
	if got != "Invalid value for size: 42" {
		t.Fatalf("got %q", got)
	}
}

func TestRegistry_ComplementFlip(t *testing.T) {
	eq := &tkn{name: "equalTo"}
	ne := &tkn{name: "notEqualTo"}
	r := NewRegistry([]Entry{
		{Test: eq, Format: func(a Args) string { return a.Name() + " must equal" }},
		{Test: ne, Format: func(a Args) string { return a.Name() + " must not equal" }},
	}, [][2]Test{{eq, ne}})

	neg := r.Message(NewRelationArgs(eq, true, "x", 1, 2))
	aff := r.Message(NewRelationArgs(ne, false, "x", 1, 2))
	if neg != aff {
		t.Fatalf("negated eq %q != affirmative ne %q", neg, aff)
	}
	// and the other direction
	neg = r.Message(NewRelationArgs(ne, true, "x", 1, 2))
	aff = r.Message(NewRelationArgs(eq, false, "x", 1, 2))
	if neg != aff {
		t.Fatalf("negated ne %q != affirmative eq %q", neg, aff)
	}
}

func TestRegistry_NegatedWithoutComplementReachesFormatter(t *testing.T) {
	blank := &tkn{name: "blank"}
	r := NewRegistry([]Entry{
		{Test: blank, Format: func(a Args) string {
			if a.Negated() {
				return "negated"
			}
			return "affirmative"
		}},
	}, nil)
	if got := r.Message(NewArgs(blank, true, "", "v")); got != "negated" {
		t.Fatalf("got %q", got)
	}
}

func TestNewRegistry_WiringBugsPanic(t *testing.T) {
	a := &tkn{name: "a"}
	b := &tkn{name: "b"}
	fmtr := func(Args) string { return "" }
	entries := []Entry{{Test: a, Format: fmtr}, {Test: b, Format: fmtr}}

	cases := []struct {
		name    string
		entries []Entry
		pairs   [][2]Test
		substr  string
	}{
		{"self pair", entries, [][2]Test{{a, a}}, "its own complement"},
		{"missing formatter", entries, [][2]Test{{a, &tkn{name: "c"}}}, "no formatter"},
		{"duplicate entry", append(entries, Entry{Test: a, Format: fmtr}), nil, "duplicate"},
		{"nil formatter", []Entry{{Test: a}}, nil, "nil"},
	}
	for _, c := range cases {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("%s: expected panic", c.name)
					return
				}
				if s, _ := r.(string); !strings.Contains(s, c.substr) {
					t.Errorf("%s: panic %v does not mention %q", c.name, r, c.substr)
				}
			}()
			NewRegistry(c.entries, c.pairs)
		}()
	}
}
