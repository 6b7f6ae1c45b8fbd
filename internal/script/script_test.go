package script

import (
	"testing"

	"go.klb.dev/grasp/internal/selection"
)

func TestParsePayloadText(t *testing.T) {
	sel := ParsePayload("some highlighted words\n")
	if sel.Kind() != selection.KindText {
		t.Fatalf("kind = %v, want text", sel.Kind())
	}
	got, ok := sel.AsText()
	if !ok || got != "some highlighted words" {
		t.Errorf("AsText() = %q, %v", got, ok)
	}
}

func TestParsePayloadFileMarker(t *testing.T) {
	sel := ParsePayload("[FILE]/Users/me/report.pdf\n")
	if sel.Kind() != selection.KindFile {
		t.Fatalf("kind = %v, want file", sel.Kind())
	}
	got, ok := sel.AsFilePath()
	if !ok || got != "/Users/me/report.pdf" {
		t.Errorf("AsFilePath() = %q, %v", got, ok)
	}
}

func TestParsePayloadEmpty(t *testing.T) {
	sel := ParsePayload("\n")
	if sel.Kind() != selection.KindText || !sel.IsEmpty() {
		t.Errorf("empty payload: kind=%v empty=%v", sel.Kind(), sel.IsEmpty())
	}
}

func TestParsePayloadMarkerMidStringIsText(t *testing.T) {
	sel := ParsePayload("see [FILE] for details\n")
	if sel.Kind() != selection.KindText {
		t.Errorf("marker not at start must stay text, got %v", sel.Kind())
	}
}
