// Package session probes the windowing-session type on Linux, which decides
// between the X11 and Wayland selection protocols.
package session

import (
	"os"
	"strings"
)

// Type is the recognized windowing-session family.
type Type int

const (
	Unknown Type = iota
	X11
	Wayland
)

func (t Type) String() string {
	switch t {
	case X11:
		return "x11"
	case Wayland:
		return "wayland"
	default:
		return "unknown"
	}
}

// Detect reads XDG_SESSION_TYPE. Only "x11" and "wayland" are recognized;
// anything else, including an unset variable, is Unknown and callers must
// treat it as an unsupported platform rather than guessing a protocol.
func Detect() Type {
	return Parse(os.Getenv("XDG_SESSION_TYPE"))
}

// Parse converts a session-type string to a Type.
func Parse(s string) Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x11":
		return X11
	case "wayland":
		return Wayland
	default:
		return Unknown
	}
}
