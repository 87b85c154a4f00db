package msg

import (
	"reflect"

	"github.com/klojang4j/checkmate/internal/typename"
)

// DefaultName is the display name used when neither an explicit argument
// name nor a resolvable type is available.
const DefaultName = "argument"

// Test identifies a registered check. The registry compares tests by plain
// interface equality and never invokes the underlying function, so pointer
// implementations give identity semantics: two independently constructed
// tests are distinct keys even when their names match.
type Test interface {
	Name() string
}

// Args carries everything a Formatter needs to phrase a failure message:
// the failed test, the negation flag, the declared argument name, the
// subject, an optional explicit subject type and, for relations, the
// target. Args is immutable; Flip and FlipTo return fresh copies.
type Args struct {
	test      Test
	negated   bool
	name      string
	subject   any
	declared  reflect.Type
	target    any
	hasTarget bool
}

// NewArgs builds the bundle for a failed unary predicate. name may be
// empty; the display name then falls back to the subject's type. A nil
// test is a wiring bug and panics.
func NewArgs(test Test, negated bool, name string, subject any) Args {
	if test == nil {
		panic("msg.NewArgs: test must not be nil")
	}
	return Args{test: test, negated: negated, name: name, subject: subject}
}

// NewRelationArgs builds the bundle for a failed relation; target is the
// object of the relation (the bound in a greater-than check, for example).
func NewRelationArgs(test Test, negated bool, name string, subject, target any) Args {
	a := NewArgs(test, negated, name, subject)
	a.target = target
	a.hasTarget = true
	return a
}

// WithType returns a copy carrying an explicit subject type. Used by
// integer-specialized entry points where the subject's boxed runtime type
// alone would not identify the declared numeric type.
func (a Args) WithType(t reflect.Type) Args {
	a.declared = t
	return a
}

// Flip returns a copy with the negation toggled.
func (a Args) Flip() Args {
	a.negated = !a.negated
	return a
}

// FlipTo returns a copy with the negation toggled and the test replaced.
// The registry uses it to delegate a negated test to its complement's
// affirmative formatter.
func (a Args) FlipTo(t Test) Args {
	if t == nil {
		panic("msg.FlipTo: test must not be nil")
	}
	a.test = t
	a.negated = !a.negated
	return a
}

// Test returns the identity of the failed test.
func (a Args) Test() Test { return a.test }

// Negated reports whether the test was asserted in its "must not" form.
func (a Args) Negated() bool { return a.negated }

// Subject returns the value that was checked.
func (a Args) Subject() any { return a.subject }

// Target returns the relation target, or nil for unary predicates.
func (a Args) Target() any { return a.target }

// HasTarget reports whether the failed test was a relation.
func (a Args) HasTarget() bool { return a.hasTarget }

func (a Args) typ() reflect.Type {
	if a.declared != nil {
		return a.declared
	}
	if a.subject != nil {
		return reflect.TypeOf(a.subject)
	}
	return nil
}

// Name resolves the display name for the subject: the explicit argument
// name when one was given, else the subject's short type name, else
// DefaultName.
func (a Args) Name() string {
	if a.name != "" {
		return a.name
	}
	if t := a.typ(); t != nil {
		return typename.Simple(t)
	}
	return DefaultName
}

// TypeAndName renders the subject as "<type> <name>" when an explicit name
// was given and a type is resolvable, e.g. "int size". Without an explicit
// name the type alone serves as the name; without a type it degrades to
// Name().
func (a Args) TypeAndName() string {
	t := a.typ()
	if t == nil {
		return a.Name()
	}
	if a.name == "" {
		return typename.Simple(t)
	}
	return typename.Simple(t) + " " + a.name
}

// TypeName returns the subject's short type name, or "null" when the
// subject is nil and no type was declared.
func (a Args) TypeName() string {
	if t := a.typ(); t != nil {
		return typename.Simple(t)
	}
	return "null"
}
