package checkmate

// Package checkmate provides fluent precondition checks: wrap a value,
// chain tests against it, and receive a descriptive error for the first
// test that fails.
//
// Design policy:
// - Keep only public APIs in the root package; put helpers under internal/.
// - Message generation lives in msg/: a prefab formatter registry keyed by
//   test identity plus a placeholder template engine for custom messages.
// - Tests are catalog singletons compared by identity; defining your own
//   via NewPredicate/NewRelation yields a new identity every time.
// - The chain never chooses error types: an ErrorFactory maps the finished
//   message to an error value.
//
// Typical usage:
//
//	size, err := checkmate.That(size, "size").
//		Has(checkmate.GT, 0).
//		Has(checkmate.LE, 100).
//		Ok()
//
//	cfg := checkmate.That(raw, "config").
//		Is(checkmate.NotEmpty).
//		Is(checkmate.ValidYAML).
//		Must()
