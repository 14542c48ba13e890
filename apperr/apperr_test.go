package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := NotFound("profile missing")
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected KindNotFound, got %v", KindOf(err))
	}

	wrapped := fmt.Errorf("handler: %w", err)
	if KindOf(wrapped) != KindNotFound {
		t.Fatalf("kind should survive wrapping, got %v", KindOf(wrapped))
	}

	if KindOf(errors.New("plain")) != KindUnknown {
		t.Fatal("plain errors must map to KindUnknown")
	}
}

func TestMessage(t *testing.T) {
	err := Conflict("username taken")
	if Message(err) != "username taken" {
		t.Fatalf("unexpected message %q", Message(err))
	}
	if Message(errors.New("boom")) != "unexpected error" {
		t.Fatal("plain errors must get the generic message")
	}
}

func TestInternalUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("db down", cause)
	if !errors.Is(err, cause) {
		t.Fatal("internal error should unwrap to its cause")
	}
	if KindOf(err) != KindInternal {
		t.Fatalf("expected KindInternal, got %v", KindOf(err))
	}
}
