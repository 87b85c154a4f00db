// Package msg generates the human-readable messages attached to failed
// checks. It has two independent paths:
//
//   - Prefab: a Registry maps test identities to canned Formatter functions.
//     Negated tests with a registered complement are re-dispatched to the
//     complement's affirmative formatter; unknown tests fall back to a
//     generic message.
//   - Custom: a caller-supplied template is resolved by a small placeholder
//     engine against a fixed argument vector (test name, subject, subject
//     type, argument name, relation target, then the caller's extras).
//
// Both paths are total: no input, including a malformed template, ever
// produces an error. A diagnostic message must never crash the validation
// it was meant to explain.
package msg
