package msg

// Formatter turns an argument bundle into a human-readable failure message.
// Formatters must be pure: same bundle, same string.
type Formatter func(Args) string

// Entry pairs a test identity with its Formatter for registry construction.
type Entry struct {
	Test   Test
	Format Formatter
}

// Registry maps test identities to prefab Formatters, with a bidirectional
// table of complementary tests for negation handling. A Registry is
// immutable after construction, so arbitrarily many goroutines may consult
// it without locking.
type Registry struct {
	formatters  map[Test]Formatter
	complements map[Test]Test
}

// NewRegistry builds a Registry from a formatter catalog and a table of
// complementary pairs. Each pair (a, b) is registered in both directions: a
// negated a is formatted as an affirmative b and vice versa, so paired
// formatters never see their own negated form. Malformed input — nil or
// duplicate tests, a pair delegating to itself, a pair member without a
// formatter — is a static wiring bug and panics.
func NewRegistry(entries []Entry, pairs [][2]Test) *Registry {
	fm := make(map[Test]Formatter, len(entries))
	for _, e := range entries {
		if e.Test == nil || e.Format == nil {
			panic("msg.NewRegistry: entry with nil test or formatter")
		}
		if _, dup := fm[e.Test]; dup {
			panic("msg.NewRegistry: duplicate formatter for " + e.Test.Name())
		}
		fm[e.Test] = e.Format
	}
	cm := make(map[Test]Test, 2*len(pairs))
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a == nil || b == nil {
			panic("msg.NewRegistry: complement pair with nil test")
		}
		if a == b {
			panic("msg.NewRegistry: " + a.Name() + " declared as its own complement")
		}
		if _, ok := fm[a]; !ok {
			panic("msg.NewRegistry: complement " + a.Name() + " has no formatter")
		}
		if _, ok := fm[b]; !ok {
			panic("msg.NewRegistry: complement " + b.Name() + " has no formatter")
		}
		if prev, dup := cm[a]; dup && prev != b {
			panic("msg.NewRegistry: conflicting complement for " + a.Name())
		}
		if prev, dup := cm[b]; dup && prev != a {
			panic("msg.NewRegistry: conflicting complement for " + b.Name())
		}
		cm[a] = b
		cm[b] = a
	}
	return &Registry{formatters: fm, complements: cm}
}

// Lookup returns the Formatter registered for t.
func (r *Registry) Lookup(t Test) (Formatter, bool) {
	f, ok := r.formatters[t]
	return f, ok
}

// Complement returns the registered complement of t, if any.
func (r *Registry) Complement(t Test) (Test, bool) {
	c, ok := r.complements[t]
	return c, ok
}

// Message renders the prefab failure message for a. A negated test with a
// registered complement is re-dispatched to the complement's affirmative
// formatter; a test without a registered formatter falls back to a generic
// message.
func (r *Registry) Message(a Args) string {
	if a.negated {
		if c, ok := r.complements[a.test]; ok {
			a = a.FlipTo(c)
		}
	}
	f, ok := r.formatters[a.test]
	if !ok {
		return "Invalid value for " + a.Name() + ": " + Render(a.subject)
	}
	return f(a)
}
