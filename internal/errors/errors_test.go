package errors

import (
	"fmt"
	"testing"
)

func TestItemNotFound_IsNotFound(t *testing.T) {
	err := fmt.Errorf("resolving: %w", ItemNotFound("7"))

	if !IsNotFound(err) {
		t.Errorf("expected wrapped ItemNotFound to satisfy IsNotFound: %v", err)
	}
	if IsValidationError(err) {
		t.Error("ItemNotFound should not be a validation error")
	}
	if got, want := ItemNotFound("7").Error(), "item not found: 7"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestInvalidField(t *testing.T) {
	err := InvalidField("backend", "must be file or sqlite")
	if !IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if got, want := err.Error(), "invalid backend: must be file or sqlite"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &ValidationError{Message: "bad"}
	if bare.Error() != "bad" {
		t.Errorf("Error() without field = %q", bare.Error())
	}
}

func TestNotInitializedError(t *testing.T) {
	withPath := &NotInitializedError{Path: "/tmp/x"}
	if !IsNotInitialized(withPath) {
		t.Error("expected IsNotInitialized")
	}
	if withPath.Error() != "paintbox not initialized in /tmp/x (run 'paintbox init')" {
		t.Errorf("unexpected message: %q", withPath.Error())
	}
	if (&NotInitializedError{}).Error() != "paintbox not initialized (run 'paintbox init')" {
		t.Error("unexpected message without path")
	}
}
