// Package controls holds the device-independent parts of input polling.
package controls

import "strings"

// Pad is the button-glyph family shown in hints.
type Pad int

const (
	PadXbox Pad = iota
	PadPlayStation
)

var playStationNames = []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"}

// Classify guesses the pad family from the name the driver reports.
// Unknown pads use Xbox glyphs.
func Classify(name string) Pad {
	name = strings.ToLower(name)
	for _, n := range playStationNames {
		if strings.Contains(name, n) {
			return PadPlayStation
		}
	}
	return PadXbox
}

// Stick is a left stick reading reduced to four directions.
type Stick struct {
	Left, Right, Up, Down bool
}

// ReadStick applies deadzone to a horizontal/vertical axis pair in [-1, 1].
// Up is negative vertical.
func ReadStick(horizontal, vertical, deadzone float64) Stick {
	return Stick{
		Left:  horizontal < -deadzone,
		Right: horizontal > deadzone,
		Up:    vertical < -deadzone,
		Down:  vertical > deadzone,
	}
}

// Merge ORs another reading into s.
func (s Stick) Merge(o Stick) Stick {
	return Stick{
		Left:  s.Left || o.Left,
		Right: s.Right || o.Right,
		Up:    s.Up || o.Up,
		Down:  s.Down || o.Down,
	}
}

// Any reports whether the stick is pushed past the deadzone at all.
func (s Stick) Any() bool {
	return s.Left || s.Right || s.Up || s.Down
}
