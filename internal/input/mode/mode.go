// Package mode defines the editor's input modes.
//
// Modes determine how key events are interpreted. The mode name doubles
// as the TOML table key under which keybinding overrides are declared,
// e.g. [keys.normal] or [keys.insert].
package mode

import "fmt"

// Mode identifies an editor input mode.
type Mode uint8

const (
	// Normal is the default command mode.
	Normal Mode = iota
	// Select extends selections while moving.
	Select
	// Insert enters text into the document.
	Insert
)

// All returns every defined mode in declaration order.
func All() []Mode {
	return []Mode{Normal, Select, Insert}
}

// String returns the configuration name for the mode.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Select:
		return "select"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Parse returns the mode for a configuration name.
func Parse(name string) (Mode, error) {
	switch name {
	case "normal":
		return Normal, nil
	case "select":
		return Select, nil
	case "insert":
		return Insert, nil
	default:
		return Normal, fmt.Errorf("unknown mode %q", name)
	}
}
