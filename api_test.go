package checkmate_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	checkmate "github.com/klojang4j/checkmate"
)

func TestThat_PassingChain(t *testing.T) {
	v, err := checkmate.That(5, "size").
		Has(checkmate.GT, 0).
		Has(checkmate.LE, 100).
		Is(checkmate.NotNull).
		Ok()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Fatalf("Ok returned %d, want subject back", v)
	}
}

func TestThat_FirstFailureWins(t *testing.T) {
	err := checkmate.That(5, "size").
		Has(checkmate.GT, 10).
		Has(checkmate.LT, 0).
		Err()
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := err.Error(); got != "int size must be > 10 (was 5)" {
		t.Fatalf("got %q", got)
	}
}

func TestThat_NegatedForm(t *testing.T) {
	err := checkmate.That("", "s").IsNot(checkmate.Empty).Err()
	if err == nil || err.Error() != "s must not be empty" {
		t.Fatalf("got %v", err)
	}
}

func TestThat_NilSubjectDefaultName(t *testing.T) {
	err := checkmate.That[any](nil, "").Is(checkmate.NotNull).Err()
	if err == nil || err.Error() != "argument must not be null" {
		t.Fatalf("got %v", err)
	}
}

func TestThat_CustomMessage(t *testing.T) {
	err := checkmate.That(5, "count").
		HasMsg(checkmate.GE, 10, "${name} must be >= ${0}", 10).
		Err()
	if err == nil || err.Error() != "count must be >= 10" {
		t.Fatalf("got %v", err)
	}
}

func TestThat_CustomMessageWellKnownTokens(t *testing.T) {
	err := checkmate.That("abc", "code").
		IsMsg(checkmate.Blank, "bad ${name}: ${arg} (${type}, test ${test})").
		Err()
	if err == nil || err.Error() != "bad code: abc (string, test blank)" {
		t.Fatalf("got %v", err)
	}
}

func TestThat_UnregisteredTestFallback(t *testing.T) {
	even := checkmate.NewPredicate("even", func(v any) bool {
		n, ok := v.(int)
		return ok && n%2 == 0
	})
	err := checkmate.That(5, "x").Is(even).Err()
	if err == nil || err.Error() != "Invalid value for x: 5" {
		t.Fatalf("got %v", err)
	}
}

func TestThatInt64_DeclaredTypeInMessage(t *testing.T) {
	err := checkmate.ThatInt64(5, "n").Has(checkmate.GT, 10).Err()
	if err == nil || err.Error() != "int64 n must be > 10 (was 5)" {
		t.Fatalf("got %v", err)
	}
}

type confErr struct{ msg string }

func (e *confErr) Error() string { return "config: " + e.msg }

func TestOnError_FactoryChoosesErrorKind(t *testing.T) {
	factory := func(m string) error { return &confErr{msg: m} }
	err := checkmate.That(0, "port").OnError(factory).Has(checkmate.GT, 0).Err()
	var ce *confErr
	if !errors.As(err, &ce) {
		t.Fatalf("factory was bypassed: %T", err)
	}
	if !strings.HasPrefix(err.Error(), "config: ") {
		t.Fatalf("got %q", err.Error())
	}
}

func TestMust_PanicsWithProducedError(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		err, ok := r.(error)
		if !ok || !strings.Contains(err.Error(), "must not be empty") {
			t.Fatalf("got %v", r)
		}
	}()
	checkmate.That("", "name").IsNot(checkmate.Empty).Must()
}

func TestMust_ReturnsSubjectOnSuccess(t *testing.T) {
	if got := checkmate.That("x", "name").IsNot(checkmate.Empty).Must(); got != "x" {
		t.Fatalf("got %q", got)
	}
}

func TestChain_ArityMisusePanics(t *testing.T) {
	cases := []struct {
		name string
		run  func()
	}{
		{"relation via Is", func() { checkmate.That(1, "x").Is(checkmate.GT) }},
		{"predicate via Has", func() { checkmate.That(1, "x").Has(checkmate.Null, 2) }},
		{"nil test", func() { checkmate.That(1, "x").Is(nil) }},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", c.name)
				}
			}()
			c.run()
		}()
	}
}

func TestChain_NoAssertionsAfterFailure(t *testing.T) {
	calls := 0
	counting := checkmate.NewPredicate("counting", func(any) bool {
		calls++
		return true
	})
	_ = checkmate.That(1, "x").Has(checkmate.GT, 10).Is(counting).Err()
	if calls != 0 {
		t.Fatalf("test ran after the chain already failed")
	}
}

func ExampleThat() {
	_, err := checkmate.That(5, "size").Has(checkmate.GT, 10).Ok()
	fmt.Println(err)
	// Output: int size must be > 10 (was 5)
}
