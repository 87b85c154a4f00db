package msg

// Custom renders a caller-supplied template for a failed check. The
// template's argument vector is the five well-known values — the test's
// display name (${test}), the rendered subject (${arg}), the subject's
// short type name (${type}), the resolved argument name (${name}) and the
// rendered relation target (${obj}) — followed by the caller's extras
// (${0}, ${1}, ...). Like everything on the message path it never fails;
// malformed templates degrade to literal text.
func Custom(format string, a Args, extra []any) string {
	vec := make([]any, 0, wellKnownCount+len(extra))
	vec = append(vec, a.test.Name(), Render(a.subject), a.TypeName(), a.Name(), Render(a.target))
	vec = append(vec, extra...)
	return Format(format, vec)
}
