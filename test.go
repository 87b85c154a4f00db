package checkmate

// Test is a single pass/fail assertion: either a unary predicate over a
// subject or a binary relation between a subject and a target. Tests are
// compared by identity, not by name or structure — every call to
// NewPredicate or NewRelation yields a distinct Test, and the message
// registry keys formatters off the exact catalog singletons. This prevents
// two independently built but identically named tests from colliding.
type Test struct {
	name string
	pred func(any) bool
	rel  func(any, any) bool
}

// NewPredicate defines a unary test. The name is a display name only; it
// feeds the ${test} template token and carries no identity.
func NewPredicate(name string, fn func(v any) bool) *Test {
	if fn == nil {
		panic("checkmate.NewPredicate: fn must not be nil")
	}
	return &Test{name: name, pred: fn}
}

// NewRelation defines a binary test; v is the subject and o the target.
func NewRelation(name string, fn func(v, o any) bool) *Test {
	if fn == nil {
		panic("checkmate.NewRelation: fn must not be nil")
	}
	return &Test{name: name, rel: fn}
}

// Name returns the test's display name.
func (t *Test) Name() string { return t.name }

// Relational reports whether the test takes a target. Relational tests are
// asserted with Has/NotHas, unary tests with Is/IsNot.
func (t *Test) Relational() bool { return t.rel != nil }
