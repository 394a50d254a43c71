// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// # Key Specifications
//
// Key specifications are written in the compact dash notation used by
// keymap configuration files:
//
//   - Simple keys: "a", "A", "1", "ret", "esc", "space", "F12"
//   - With modifiers: "C-s", "A-F12", "S-C-a", "C-A-del"
//
// Events carry no timestamps and are comparable, so they can be used
// directly as map keys in keybinding tries.
package key
