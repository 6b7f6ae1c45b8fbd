package session

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Type
	}{
		{"x11", X11},
		{"X11", X11},
		{" x11 ", X11},
		{"wayland", Wayland},
		{"Wayland", Wayland},
		{"tty", Unknown},
		{"mir", Unknown},
		{"", Unknown},
	}
	for _, c := range cases {
		if got := Parse(c.in); got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("XDG_SESSION_TYPE", "wayland")
	if got := Detect(); got != Wayland {
		t.Errorf("Detect() = %v, want Wayland", got)
	}
	t.Setenv("XDG_SESSION_TYPE", "unknown")
	if got := Detect(); got != Unknown {
		t.Errorf("Detect() = %v, want Unknown", got)
	}
}
