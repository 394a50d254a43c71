package key

import "strings"

// Event represents a single key press.
// Events are comparable and can be used as map keys.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// String returns the canonical specification for the event,
// e.g. "a", "C-s", "A-F12", "space". The result parses back to
// an identical event.
func (e Event) String() string {
	var keyName string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		keyName = "space"
	case e.Key == KeyRune:
		keyName = string(e.Rune)
	default:
		keyName = e.Key.String()
	}

	if e.Modifiers.IsEmpty() {
		return keyName
	}
	return strings.Join([]string{e.Modifiers.String(), keyName}, "-")
}
