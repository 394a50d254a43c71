// Package keymap provides the built-in keybinding table and the
// operations used to layer configuration overrides onto it.
//
// A keymap is a mapping from editor mode to a keybinding trie. The
// default table covers every mode; user and workspace configuration
// contribute override tables that are merged on top with override-wins
// semantics.
package keymap

import (
	"fmt"

	"github.com/dshills/squall/internal/input/keytree"
	"github.com/dshills/squall/internal/input/mode"
)

// Keys is a complete or partial keybinding table keyed by mode.
type Keys map[mode.Mode]*keytree.Trie

// MergeKeys layers src onto dst. Modes present in both merge trie-wise
// (override bindings win); modes only in src are added. A nil src is a
// no-op.
func MergeKeys(dst, src Keys) {
	for m, srcTrie := range src {
		if dstTrie, ok := dst[m]; ok {
			dstTrie.Merge(srcTrie)
			continue
		}
		dst[m] = srcTrie.Clone()
	}
}

// Clone creates a deep copy of a keybinding table.
func Clone(keys Keys) Keys {
	c := make(Keys, len(keys))
	for m, t := range keys {
		c[m] = t.Clone()
	}
	return c
}

// FromConfig converts a decoded TOML keys table into a typed keymap.
// Table keys must be mode names; values must be keybinding tables.
func FromConfig(raw map[string]any) (Keys, error) {
	keys := make(Keys, len(raw))
	for name, v := range raw {
		m, err := mode.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("keys: %w", err)
		}
		table, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("keys.%s: expected a table of bindings, got %T", name, v)
		}
		trie, err := keytree.FromValue(table)
		if err != nil {
			return nil, fmt.Errorf("keys.%s: %w", name, err)
		}
		keys[m] = trie
	}
	return keys, nil
}

// Equal reports whether two keybinding tables hold identical bindings.
func Equal(a, b Keys) bool {
	if len(a) != len(b) {
		return false
	}
	for m, t := range a {
		if !t.Equal(b[m]) {
			return false
		}
	}
	return true
}
