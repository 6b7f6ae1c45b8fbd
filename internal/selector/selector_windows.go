//go:build windows

package selector

import (
	ole "github.com/go-ole/go-ole"

	"go.klb.dev/grasp/internal/access"
	"go.klb.dev/grasp/internal/clip"
	"go.klb.dev/grasp/internal/keys"
	"go.klb.dev/grasp/internal/runonce"
	"go.klb.dev/grasp/internal/safecopy"
	"go.klb.dev/grasp/internal/selection"
)

// comContext brings up the COM apartment exactly once for the selector that
// owns it and replays a failed bring-up to every later call.
type comContext struct {
	guard runonce.Guard
}

func (c *comContext) ensure() error {
	return c.guard.Do(func() error {
		if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
			return selection.WrapError(selection.CodeAccessibility, "initialize COM apartment", err)
		}
		return nil
	})
}

type windowsSelector struct {
	com   *comContext
	tree  access.Provider
	proto *safecopy.Protocol
}

// NewWith returns the Windows selector: UI Automation first, clipboard
// safe-copy as the fallback.
func NewWith(cfg Config) Selector {
	return &windowsSelector{
		com: &comContext{},
		proto: &safecopy.Protocol{
			Clipboard: clip.New(),
			Keys:      keys.Simulator{},
			Wait:      cfg.CopyWait,
			Poll:      cfg.CopyPoll,
		},
	}
}

func (s *windowsSelector) GetSelection() (selection.Selection, error) {
	return Acquire(
		Method{Name: "ui-automation", Get: s.GetSelectionByAccessibility},
		Method{Name: "clipboard", Get: s.GetSelectionByClipboard},
	)
}

func (s *windowsSelector) GetSelectionByAccessibility() (selection.Selection, error) {
	if err := s.com.ensure(); err != nil {
		return selection.Selection{}, err
	}
	text, q, err := s.tree.SelectedText()
	if err != nil {
		return selection.Selection{}, err
	}
	if err := access.MapQuery(q); err != nil {
		return selection.Selection{}, err
	}
	return selection.NewText(text), nil
}

func (s *windowsSelector) GetSelectionByClipboard() (selection.Selection, error) {
	return s.proto.Capture()
}
