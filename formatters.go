package checkmate

import (
	"sync"

	"github.com/klojang4j/checkmate/msg"
)

// Formatters returns the registry of prefab message formatters for the
// built-in catalog. It is built once, never mutated, and safe to consult
// from any goroutine.
func Formatters() *msg.Registry { return registry() }

var registry = sync.OnceValue(func() *msg.Registry {
	entries := []msg.Entry{
		{Test: Null, Format: msgNull},
		{Test: NotNull, Format: msgNotNull},
		{Test: Empty, Format: msgEmpty},
		{Test: NotEmpty, Format: msgNotEmpty},
		{Test: Blank, Format: msgBlank},
		{Test: Zero, Format: msgZero},
		{Test: Positive, Format: msgPositive},
		{Test: Negative, Format: msgNegative},
		{Test: ValidJSON, Format: msgValidJSON},
		{Test: ValidYAML, Format: msgValidYAML},
		{Test: EQ, Format: msgEQ},
		{Test: NE, Format: msgNE},
		{Test: LT, Format: ordered("<")},
		{Test: LE, Format: ordered("<=")},
		{Test: GT, Format: ordered(">")},
		{Test: GE, Format: ordered(">=")},
		{Test: SameAs, Format: msgSameAs},
		{Test: NotSameAs, Format: msgNotSameAs},
		{Test: Contains, Format: msgContains},
	}
	// Affirmative/negative pairs. A negated left side renders as the
	// affirmative right side and vice versa.
	pairs := [][2]msg.Test{
		{Null, NotNull},
		{Empty, NotEmpty},
		{EQ, NE},
		{LT, GE},
		{GT, LE},
		{SameAs, NotSameAs},
	}
	return msg.NewRegistry(entries, pairs)
})

// Paired formatters below are written for the affirmative phrasing only;
// the registry's complement table guarantees they never see Negated().
// Unpaired formatters handle both polarities inline.

func msgNull(a msg.Args) string {
	return a.Name() + " must be null (was " + msg.Render(a.Subject()) + ")"
}

func msgNotNull(a msg.Args) string {
	return a.Name() + " must not be null"
}

func msgEmpty(a msg.Args) string {
	return a.Name() + " must be empty (was " + msg.Render(a.Subject()) + ")"
}

func msgNotEmpty(a msg.Args) string {
	return a.Name() + " must not be empty"
}

func msgBlank(a msg.Args) string {
	if a.Negated() {
		return a.Name() + " must not be blank"
	}
	return a.Name() + " must be blank (was " + msg.Render(a.Subject()) + ")"
}

func msgZero(a msg.Args) string {
	if a.Negated() {
		return a.Name() + " must not be zero"
	}
	return a.Name() + " must be zero (was " + msg.Render(a.Subject()) + ")"
}

func msgPositive(a msg.Args) string {
	if a.Negated() {
		return a.TypeAndName() + " must not be positive (was " + msg.Render(a.Subject()) + ")"
	}
	return a.TypeAndName() + " must be positive (was " + msg.Render(a.Subject()) + ")"
}

func msgNegative(a msg.Args) string {
	if a.Negated() {
		return a.TypeAndName() + " must not be negative (was " + msg.Render(a.Subject()) + ")"
	}
	return a.TypeAndName() + " must be negative (was " + msg.Render(a.Subject()) + ")"
}

func msgValidJSON(a msg.Args) string {
	if a.Negated() {
		return a.Name() + " must not be valid JSON"
	}
	return a.Name() + " must be valid JSON (was " + msg.Render(a.Subject()) + ")"
}

func msgValidYAML(a msg.Args) string {
	if a.Negated() {
		return a.Name() + " must not be valid YAML"
	}
	return a.Name() + " must be valid YAML (was " + msg.Render(a.Subject()) + ")"
}

func msgEQ(a msg.Args) string {
	return a.Name() + " must equal " + msg.Render(a.Target()) + " (was " + msg.Render(a.Subject()) + ")"
}

func msgNE(a msg.Args) string {
	return a.Name() + " must not equal " + msg.Render(a.Target())
}

func ordered(op string) msg.Formatter {
	return func(a msg.Args) string {
		return a.TypeAndName() + " must be " + op + " " + msg.Render(a.Target()) +
			" (was " + msg.Render(a.Subject()) + ")"
	}
}

func msgSameAs(a msg.Args) string {
	return a.Name() + " must be the same object as " + msg.Render(a.Target()) +
		" (was " + msg.Render(a.Subject()) + ")"
}

func msgNotSameAs(a msg.Args) string {
	return a.Name() + " must not be the same object as " + msg.Render(a.Target())
}

func msgContains(a msg.Args) string {
	if a.Negated() {
		return a.Name() + " must not contain " + msg.Render(a.Target())
	}
	return a.Name() + " must contain " + msg.Render(a.Target())
}
