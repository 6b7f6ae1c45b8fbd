package grasp

import (
	"errors"
	"testing"
)

func TestSelectionRoundTripThroughFacade(t *testing.T) {
	sel := NewText("hello")
	if sel.Kind() != KindText {
		t.Fatalf("kind = %v", sel.Kind())
	}
	if got, ok := sel.AsText(); !ok || got != "hello" {
		t.Errorf("AsText() = %q, %v", got, ok)
	}
}

func TestErrorCodesThroughFacade(t *testing.T) {
	if CodeOf(ErrNoSelectedContent) != CodeNoSelectedContent {
		t.Error("sentinel code mismatch")
	}
	if !errors.Is(ErrUnsupportedPlatform, ErrUnsupportedPlatform) {
		t.Error("sentinel does not match itself")
	}
	if CodeOf(errors.New("plain")) != CodeOther {
		t.Error("foreign error must classify as other")
	}
}
