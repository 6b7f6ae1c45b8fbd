//go:build darwin

package selector

import (
	"go.klb.dev/grasp/internal/access"
	"go.klb.dev/grasp/internal/script"
	"go.klb.dev/grasp/internal/selection"
)

type darwinSelector struct {
	tree   access.Provider
	runner script.Runner
}

// NewWith returns the macOS selector: accessibility tree first, scripted
// clipboard copy as the fallback. The copy protocol runs inside the script,
// so the tuning config is not consulted here.
func NewWith(Config) Selector {
	return &darwinSelector{runner: script.Osascript{}}
}

func (s *darwinSelector) GetSelection() (selection.Selection, error) {
	return Acquire(
		Method{Name: "accessibility", Get: s.GetSelectionByAccessibility},
		Method{Name: "clipboard", Get: s.GetSelectionByClipboard},
	)
}

func (s *darwinSelector) GetSelectionByAccessibility() (selection.Selection, error) {
	text, q, err := s.tree.SelectedText()
	if err != nil {
		return selection.Selection{}, err
	}
	if err := access.MapQuery(q); err != nil {
		return selection.Selection{}, err
	}
	return selection.NewText(text), nil
}

func (s *darwinSelector) GetSelectionByClipboard() (selection.Selection, error) {
	out, err := s.runner.Run(script.CopySnippet)
	if err != nil {
		return selection.Selection{}, err
	}
	return script.ParsePayload(out), nil
}
