// Package keytree implements the keybinding trie.
//
// A Trie is one of three things: a leaf bound to a single command, a leaf
// bound to a command sequence, or an inner node mapping key events to
// sub-tries. Multi-key bindings like "g g" are represented as nested
// nodes. Tries merge with override-wins semantics: overlapping bound keys
// take the override's binding, non-overlapping keys are additive.
package keytree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/squall/internal/input/key"
)

// Trie is a node in a keybinding trie.
// Exactly one of Command, Sequence, or Children is set.
type Trie struct {
	// Command is the bound command for a single-command leaf.
	Command string

	// Sequence is the bound command list for a sequence leaf.
	Sequence []string

	// Children maps key events to sub-tries for an inner node.
	Children map[key.Event]*Trie
}

// NewLeaf creates a leaf bound to a single command.
func NewLeaf(command string) *Trie {
	return &Trie{Command: command}
}

// NewSequence creates a leaf bound to a list of commands executed in order.
func NewSequence(commands ...string) *Trie {
	return &Trie{Sequence: commands}
}

// NewNode creates an empty inner node.
func NewNode() *Trie {
	return &Trie{Children: make(map[key.Event]*Trie)}
}

// IsNode returns true for inner nodes.
func (t *Trie) IsNode() bool {
	return t != nil && t.Children != nil
}

// Bind inserts a binding for the given event, replacing any existing one.
func (t *Trie) Bind(ev key.Event, sub *Trie) {
	if t.Children == nil {
		t.Children = make(map[key.Event]*Trie)
	}
	t.Children[ev] = sub
}

// Find walks the trie along the given key events.
// Returns nil if the path leads nowhere.
func (t *Trie) Find(events ...key.Event) *Trie {
	node := t
	for _, ev := range events {
		if node == nil || node.Children == nil {
			return nil
		}
		node = node.Children[ev]
	}
	return node
}

// Clone creates a deep copy of the trie.
func (t *Trie) Clone() *Trie {
	if t == nil {
		return nil
	}
	c := &Trie{Command: t.Command}
	if t.Sequence != nil {
		c.Sequence = make([]string, len(t.Sequence))
		copy(c.Sequence, t.Sequence)
	}
	if t.Children != nil {
		c.Children = make(map[key.Event]*Trie, len(t.Children))
		for ev, sub := range t.Children {
			c.Children[ev] = sub.Clone()
		}
	}
	return c
}

// Merge layers src onto t. Both must be inner nodes. For each key in src:
// if both sides hold an inner node for that key the nodes merge
// recursively, otherwise src's binding replaces t's. Keys bound only in t
// are preserved.
func (t *Trie) Merge(src *Trie) {
	if src == nil || src.Children == nil {
		return
	}
	if t.Children == nil {
		t.Children = make(map[key.Event]*Trie, len(src.Children))
	}
	for ev, srcSub := range src.Children {
		dstSub, exists := t.Children[ev]
		if exists && dstSub.IsNode() && srcSub.IsNode() {
			dstSub.Merge(srcSub)
			continue
		}
		t.Children[ev] = srcSub.Clone()
	}
}

// Equal reports whether two tries hold identical bindings.
func (t *Trie) Equal(other *Trie) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Command != other.Command {
		return false
	}
	if len(t.Sequence) != len(other.Sequence) {
		return false
	}
	for i, cmd := range t.Sequence {
		if other.Sequence[i] != cmd {
			return false
		}
	}
	if len(t.Children) != len(other.Children) {
		return false
	}
	for ev, sub := range t.Children {
		if !sub.Equal(other.Children[ev]) {
			return false
		}
	}
	return true
}

// String renders the trie in a compact deterministic form, for debugging
// and test failure output.
func (t *Trie) String() string {
	if t == nil {
		return "<nil>"
	}
	switch {
	case t.Command != "":
		return t.Command
	case t.Sequence != nil:
		return "[" + strings.Join(t.Sequence, " ") + "]"
	default:
		specs := make([]string, 0, len(t.Children))
		for ev := range t.Children {
			specs = append(specs, ev.String())
		}
		sort.Strings(specs)
		var b strings.Builder
		b.WriteByte('{')
		for i, spec := range specs {
			if i > 0 {
				b.WriteString(", ")
			}
			ev := key.MustParse(spec)
			fmt.Fprintf(&b, "%s=%s", spec, t.Children[ev].String())
		}
		b.WriteByte('}')
		return b.String()
	}
}
