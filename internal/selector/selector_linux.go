//go:build linux

package selector

import (
	"errors"
	"os/exec"
	"strings"

	"go.klb.dev/grasp/internal/selection"
	"go.klb.dev/grasp/internal/session"
)

// On Linux the selection is already published by the toolkit as the PRIMARY
// selection, so no copy simulation is needed; the strategy reads PRIMARY
// through the session's native tool. The session type decides which protocol
// family applies; an unrecognized session is a terminal unsupported-platform
// failure, not a fallback step.

type linuxSelector struct {
	detect  func() session.Type
	runTool func(name string, args ...string) ([]byte, error)
}

// NewWith returns the Linux selector. Reading PRIMARY needs no copy
// simulation, so the tuning config is not consulted here.
func NewWith(Config) Selector {
	return &linuxSelector{
		detect: session.Detect,
		runTool: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

func (s *linuxSelector) GetSelection() (selection.Selection, error) {
	return s.GetSelectionByClipboard()
}

// GetSelectionByAccessibility reports that no assistive-technology selection
// facility is bound on Linux; callers fall through to the clipboard method.
func (s *linuxSelector) GetSelectionByAccessibility() (selection.Selection, error) {
	return selection.Selection{}, selection.NewError(selection.CodeAccessibility,
		"no accessibility selection facility on linux")
}

func (s *linuxSelector) GetSelectionByClipboard() (selection.Selection, error) {
	switch s.detect() {
	case session.X11:
		return s.readPrimaryX11()
	case session.Wayland:
		return s.readPrimaryWayland()
	default:
		return selection.Selection{}, selection.ErrUnsupportedPlatform
	}
}

// x11 primary readers, tried in order.
var x11Tools = []struct {
	name string
	args []string
}{
	{"xclip", []string{"-o", "-selection", "primary"}},
	{"xsel", []string{"--primary", "--output"}},
}

func (s *linuxSelector) readPrimaryX11() (selection.Selection, error) {
	var lastErr error
	for _, tool := range x11Tools {
		out, err := s.runTool(tool.name, tool.args...)
		if err == nil {
			return selection.NewText(trimPrimary(out)), nil
		}
		lastErr = err
	}
	return selection.Selection{}, selection.WrapError(selection.CodeClipboard,
		"read X11 primary selection", lastErr)
}

func (s *linuxSelector) readPrimaryWayland() (selection.Selection, error) {
	out, err := s.runTool("wl-paste", "--primary", "--no-newline")
	if err == nil {
		return selection.NewText(trimPrimary(out)), nil
	}
	// No wl-paste (or no primary-selection support): Xwayland usually still
	// serves PRIMARY, so fall back to the X11 path.
	if errors.Is(err, exec.ErrNotFound) {
		return s.readPrimaryX11()
	}
	return selection.Selection{}, selection.WrapError(selection.CodeClipboard,
		"read Wayland primary selection", err)
}

// trimPrimary strips NUL padding and surrounding whitespace from a primary
// selection payload.
func trimPrimary(out []byte) string {
	return strings.TrimSpace(strings.Trim(string(out), "\x00"))
}
