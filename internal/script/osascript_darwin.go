//go:build darwin

package script

import (
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"

	"go.klb.dev/grasp/internal/selection"
)

// Osascript runs script sources through /usr/bin/osascript.
type Osascript struct{}

// Run executes src and returns its stdout. A non-zero exit surfaces as a
// script error carrying the interpreter's stderr; stdout that is not valid
// UTF-8 surfaces as an encoding error.
func (Osascript) Run(src string) (string, error) {
	out, err := exec.Command("osascript", "-e", src).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(string(exitErr.Stderr))
			return "", selection.Errorf(selection.CodeScript, "osascript: %s", msg)
		}
		return "", selection.WrapError(selection.CodeIO, "run osascript", err)
	}
	if !utf8.Valid(out) {
		return "", selection.NewError(selection.CodeEncoding, "osascript output is not valid UTF-8")
	}
	return string(out), nil
}
