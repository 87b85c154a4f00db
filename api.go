package checkmate

import (
	"errors"
	"reflect"

	"github.com/klojang4j/checkmate/msg"
)

// ErrorFactory turns a finished failure message into the error value
// returned by the chain. The message subsystem decides what the error says,
// never what kind of error it is.
type ErrorFactory func(message string) error

func defaultFactory(message string) error { return errors.New(message) }

// Check is a fluent validation chain over a single subject. Assertions run
// in order; the first failure produces the chain's error and later
// assertions become no-ops.
type Check[T any] struct {
	subject  T
	name     string
	declared reflect.Type
	factory  ErrorFactory
	err      error
}

// That starts a chain for subject. name may be empty; failure messages
// then refer to the subject by its type name.
func That[T any](subject T, name string) *Check[T] {
	return &Check[T]{subject: subject, name: name, factory: defaultFactory}
}

// ThatInt starts a chain for an int subject, tagging the message bundle
// with the declared type so formatters can name it even when the subject is
// later handled as an untyped value.
func ThatInt(subject int, name string) *Check[int] {
	c := That(subject, name)
	c.declared = reflect.TypeOf(subject)
	return c
}

// ThatInt64 is ThatInt for int64 subjects.
func ThatInt64(subject int64, name string) *Check[int64] {
	c := That(subject, name)
	c.declared = reflect.TypeOf(subject)
	return c
}

// OnError replaces the error factory for this chain. A nil factory keeps
// the current one.
func (c *Check[T]) OnError(f ErrorFactory) *Check[T] {
	if f != nil {
		c.factory = f
	}
	return c
}

// Is asserts a unary test in its affirmative form.
func (c *Check[T]) Is(t *Test) *Check[T] {
	return c.unary(t, false, false, "", nil)
}

// IsNot asserts a unary test in its negated ("must not") form.
func (c *Check[T]) IsNot(t *Test) *Check[T] {
	return c.unary(t, true, false, "", nil)
}

// IsMsg is Is with a caller-supplied message template. The extras are
// available to the template as ${0}, ${1}, ... alongside the well-known
// ${test}, ${arg}, ${type}, ${name} and ${obj} tokens.
func (c *Check[T]) IsMsg(t *Test, format string, extra ...any) *Check[T] {
	return c.unary(t, false, true, format, extra)
}

// IsNotMsg is IsNot with a caller-supplied message template.
func (c *Check[T]) IsNotMsg(t *Test, format string, extra ...any) *Check[T] {
	return c.unary(t, true, true, format, extra)
}

// Has asserts a relational test against target in its affirmative form.
func (c *Check[T]) Has(t *Test, target any) *Check[T] {
	return c.relational(t, false, target, false, "", nil)
}

// NotHas asserts a relational test in its negated form.
func (c *Check[T]) NotHas(t *Test, target any) *Check[T] {
	return c.relational(t, true, target, false, "", nil)
}

// HasMsg is Has with a caller-supplied message template.
func (c *Check[T]) HasMsg(t *Test, target any, format string, extra ...any) *Check[T] {
	return c.relational(t, false, target, true, format, extra)
}

// NotHasMsg is NotHas with a caller-supplied message template.
func (c *Check[T]) NotHasMsg(t *Test, target any, format string, extra ...any) *Check[T] {
	return c.relational(t, true, target, true, format, extra)
}

// Err returns the first failure, or nil when every assertion passed.
func (c *Check[T]) Err() error { return c.err }

// Ok returns the subject together with the chain's outcome.
func (c *Check[T]) Ok() (T, error) { return c.subject, c.err }

// Must returns the subject and panics with the produced error on failure.
// Intended for init-time preconditions where no caller can recover.
func (c *Check[T]) Must() T {
	if c.err != nil {
		panic(c.err)
	}
	return c.subject
}

func (c *Check[T]) unary(t *Test, negated, custom bool, format string, extra []any) *Check[T] {
	if c.err != nil {
		return c
	}
	if t == nil {
		panic("checkmate.Is: test must not be nil")
	}
	if t.pred == nil {
		panic("checkmate.Is: " + t.name + " is a relation; use Has")
	}
	if t.pred(any(c.subject)) != negated {
		return c
	}
	a := msg.NewArgs(t, negated, c.name, any(c.subject))
	c.fail(a, custom, format, extra)
	return c
}

func (c *Check[T]) relational(t *Test, negated bool, target any, custom bool, format string, extra []any) *Check[T] {
	if c.err != nil {
		return c
	}
	if t == nil {
		panic("checkmate.Has: test must not be nil")
	}
	if t.rel == nil {
		panic("checkmate.Has: " + t.name + " is a predicate; use Is")
	}
	if t.rel(any(c.subject), target) != negated {
		return c
	}
	a := msg.NewRelationArgs(t, negated, c.name, any(c.subject), target)
	c.fail(a, custom, format, extra)
	return c
}

// fail runs the error construction pipeline: custom template or prefab
// registry, chosen by the call site, then the error factory.
func (c *Check[T]) fail(a msg.Args, custom bool, format string, extra []any) {
	if c.declared != nil {
		a = a.WithType(c.declared)
	}
	var m string
	if custom {
		m = msg.Custom(format, a, extra)
	} else {
		m = Formatters().Message(a)
	}
	c.err = c.factory(m)
}
