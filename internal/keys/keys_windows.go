//go:build windows

package keys

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// Simulator issues keyboard events through robotgo.
type Simulator struct{}

// ReleaseModifiers lifts Control, Alt, Shift and the Windows key. A previous
// aborted gesture can leave any of them logically pressed, which would turn
// the upcoming Ctrl+C into a different chord.
func (Simulator) ReleaseModifiers() error {
	for _, key := range []string{"ctrl", "alt", "shift", "cmd"} {
		if err := robotgo.KeyToggle(key, "up"); err != nil {
			return fmt.Errorf("release %s: %w", key, err)
		}
	}
	return nil
}

// Copy issues the copy chord as discrete events: press Control, tap C,
// release Control. Control is released even when the tap fails.
func (Simulator) Copy() error {
	if err := robotgo.KeyToggle("ctrl", "down"); err != nil {
		return fmt.Errorf("press ctrl: %w", err)
	}
	tapErr := robotgo.KeyTap("c")
	if err := robotgo.KeyToggle("ctrl", "up"); err != nil {
		return fmt.Errorf("release ctrl: %w", err)
	}
	if tapErr != nil {
		return fmt.Errorf("tap c: %w", tapErr)
	}
	return nil
}
