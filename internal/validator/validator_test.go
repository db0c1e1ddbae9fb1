package validator

import "testing"

func TestValidatorEmpty(t *testing.T) {
	v := New()
	if !v.Valid() {
		t.Fatal("expected new validator to be valid")
	}
	if got := v.First(); got != "" {
		t.Errorf("expected empty first message, got %q", got)
	}
}

func TestValidatorFirstFollowsCheckOrder(t *testing.T) {
	v := New()
	v.Check(true, "ok", "never recorded")
	v.Check(false, "name", "name missing")
	v.Check(false, "readPage", "readPage too large")

	if v.Valid() {
		t.Fatal("expected validator to be invalid")
	}
	if len(v.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(v.Errors))
	}
	if got := v.First(); got != "name missing" {
		t.Errorf("expected first message %q, got %q", "name missing", got)
	}
}

func TestValidatorAddErrorKeepsFirstMessage(t *testing.T) {
	v := New()
	v.AddError("name", "first")
	v.AddError("name", "second")

	if got := v.Errors["name"]; got != "first" {
		t.Errorf("expected %q, got %q", "first", got)
	}
	if got := v.First(); got != "first" {
		t.Errorf("expected %q, got %q", "first", got)
	}
}
