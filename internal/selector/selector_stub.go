//go:build !darwin && !windows && !linux

package selector

import "go.klb.dev/grasp/internal/selection"

type unsupportedSelector struct{}

// NewWith returns a selector whose every operation reports an unsupported
// platform.
func NewWith(Config) Selector { return unsupportedSelector{} }

func (unsupportedSelector) GetSelection() (selection.Selection, error) {
	return selection.Selection{}, selection.ErrUnsupportedPlatform
}

func (unsupportedSelector) GetSelectionByAccessibility() (selection.Selection, error) {
	return selection.Selection{}, selection.ErrUnsupportedPlatform
}

func (unsupportedSelector) GetSelectionByClipboard() (selection.Selection, error) {
	return selection.Selection{}, selection.ErrUnsupportedPlatform
}
