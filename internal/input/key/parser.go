package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Named keys: "ret", "esc", "tab", "backspace", "space", "F12"
//   - With modifiers: "C-s", "A-F12", "S-C-a", "C-A-del"
//
// Modifier prefixes are single letters separated by dashes: C (Ctrl),
// A (Alt), S (Shift), M (Meta). The final dash-separated part is the key.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// A bare "-" is the minus key, not a separator.
	if spec == "-" {
		return NewRuneEvent('-', ModNone), nil
	}

	parts := strings.Split(spec, "-")

	// A trailing dash means the key itself is "-", e.g. "C--".
	if parts[len(parts)-1] == "" && len(parts) >= 2 {
		parts = append(parts[:len(parts)-2], "-")
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		if mods.Has(mod) {
			return Event{}, fmt.Errorf("%w: duplicate modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods = mods.With(mod)
	}

	return parseKeyPart(parts[len(parts)-1], mods, spec)
}

// parseKeyPart parses the final key name with already-known modifiers.
func parseKeyPart(keyPart string, mods Modifier, spec string) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}

	// Single character keys, including punctuation.
	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}

	// Aliases that map to characters rather than special keys.
	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "minus":
		return NewRuneEvent('-', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	}

	if k := KeyFromName(strings.ToLower(keyPart)); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// ParseSequence parses a whitespace-separated list of key specifications,
// e.g. "g g" or "space w v".
func ParseSequence(spec string) ([]Event, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, ErrEmptySpec
	}

	events := make([]Event, 0, len(fields))
	for _, f := range fields {
		ev, err := Parse(f)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
