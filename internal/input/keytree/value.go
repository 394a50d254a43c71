package keytree

import (
	"fmt"

	"github.com/dshills/squall/internal/input/key"
)

// FromValue builds a trie from a decoded TOML keybinding table.
//
// String values become command leaves, string arrays become sequence
// leaves, and nested tables become inner nodes keyed by parsed key
// specifications. Any other shape is an error.
func FromValue(v any) (*Trie, error) {
	switch val := v.(type) {
	case string:
		return NewLeaf(val), nil
	case []any:
		commands := make([]string, 0, len(val))
		for _, item := range val {
			cmd, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("command sequence entries must be strings, got %T", item)
			}
			commands = append(commands, cmd)
		}
		return NewSequence(commands...), nil
	case []string:
		return NewSequence(val...), nil
	case map[string]any:
		node := NewNode()
		for spec, sub := range val {
			ev, err := key.Parse(spec)
			if err != nil {
				return nil, fmt.Errorf("binding %q: %w", spec, err)
			}
			subTrie, err := FromValue(sub)
			if err != nil {
				return nil, fmt.Errorf("binding %q: %w", spec, err)
			}
			node.Children[ev] = subTrie
		}
		return node, nil
	default:
		return nil, fmt.Errorf("invalid keybinding value of type %T", v)
	}
}
