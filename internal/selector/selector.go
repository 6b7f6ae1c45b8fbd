// Package selector defines the per-platform acquisition contract and the
// fallback orchestration that is shared by every platform.
//
// Ordering is the point: the accessibility method is tried first because it
// never touches shared OS state; the clipboard method transiently overwrites
// the system clipboard and runs only when the non-destructive path is
// unavailable or inconclusive. An empty accessibility result usually means
// "this application does not expose selection through the tree", not "nothing
// is selected", so emptiness falls through exactly like an error.
package selector

import (
	"log/slog"
	"time"

	"go.klb.dev/grasp/internal/selection"
)

// Config tunes the invasive clipboard path. Zero values take the safe-copy
// defaults. Platforms that never simulate a copy ignore it.
type Config struct {
	// CopyWait is the change-detection budget after the simulated copy
	// gesture.
	CopyWait time.Duration
	// CopyPoll is how often the clipboard change token is re-checked inside
	// that budget.
	CopyPoll time.Duration
}

// New returns the selector for the running platform with default tuning.
func New() Selector { return NewWith(Config{}) }

// Selector retrieves the user's current selection. Every platform exposes the
// same three operations so the orchestration and its tests are written once.
type Selector interface {
	// GetSelection tries the methods in priority order and returns the first
	// usable result.
	GetSelection() (selection.Selection, error)
	// GetSelectionByAccessibility queries only the assistive-technology tree.
	GetSelectionByAccessibility() (selection.Selection, error)
	// GetSelectionByClipboard uses clipboard inspection, possibly behind a
	// simulated copy.
	GetSelectionByClipboard() (selection.Selection, error)
}

// Method is one acquisition attempt in a fallback chain.
type Method struct {
	Name string
	Get  func() (selection.Selection, error)
}

// Acquire runs methods in order. Any method but the last falls through on
// error or on a successful-but-empty result; its failure is recorded and
// superseded by the next attempt. The last method's outcome, success or
// error, is returned verbatim.
func Acquire(methods ...Method) (selection.Selection, error) {
	last := len(methods) - 1
	for i, m := range methods {
		sel, err := m.Get()
		if i == last {
			return sel, err
		}
		switch {
		case err != nil:
			slog.Debug("selection method failed, falling through",
				"method", m.Name, "err", err)
		case sel.IsEmpty():
			slog.Debug("selection method returned empty result, falling through",
				"method", m.Name)
		default:
			return sel, nil
		}
	}
	return selection.Selection{}, selection.ErrUnsupportedPlatform
}

// Text resolves a selection through s and returns it as text, failing with an
// invalid-content-type error when the resolved selection is something else.
func Text(s Selector) (string, error) {
	sel, err := s.GetSelection()
	if err != nil {
		return "", err
	}
	text, ok := sel.AsText()
	if !ok {
		return "", selection.ContentTypeError("text", sel.ContentType())
	}
	return text, nil
}
