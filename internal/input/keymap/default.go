package keymap

import (
	"github.com/dshills/squall/internal/input/key"
	"github.com/dshills/squall/internal/input/keytree"
	"github.com/dshills/squall/internal/input/mode"
)

// binding pairs a key sequence specification with a command.
type binding struct {
	Keys    string
	Command string
}

// Default returns the complete built-in keybinding table. Every mode has
// an entry. Each call returns a fresh deep copy, so callers may layer
// overrides onto the result without affecting later calls.
func Default() Keys {
	return Keys{
		mode.Normal: defaultNormalKeys(),
		mode.Select: defaultSelectKeys(),
		mode.Insert: defaultInsertKeys(),
	}
}

// defaultNormalKeys returns default normal mode bindings.
func defaultNormalKeys() *keytree.Trie {
	return build([]binding{
		// Movement
		{Keys: "h", Command: "move_char_left"},
		{Keys: "j", Command: "move_line_down"},
		{Keys: "k", Command: "move_line_up"},
		{Keys: "l", Command: "move_char_right"},
		{Keys: "left", Command: "move_char_left"},
		{Keys: "down", Command: "move_line_down"},
		{Keys: "up", Command: "move_line_up"},
		{Keys: "right", Command: "move_char_right"},
		{Keys: "w", Command: "move_next_word_start"},
		{Keys: "b", Command: "move_prev_word_start"},
		{Keys: "e", Command: "move_next_word_end"},
		{Keys: "W", Command: "move_next_long_word_start"},
		{Keys: "B", Command: "move_prev_long_word_start"},
		{Keys: "E", Command: "move_next_long_word_end"},
		{Keys: "t", Command: "find_till_char"},
		{Keys: "f", Command: "find_next_char"},
		{Keys: "T", Command: "till_prev_char"},
		{Keys: "F", Command: "find_prev_char"},
		{Keys: "home", Command: "goto_line_start"},
		{Keys: "end", Command: "goto_line_end"},
		{Keys: "pageup", Command: "page_up"},
		{Keys: "pagedown", Command: "page_down"},
		{Keys: "C-u", Command: "half_page_up"},
		{Keys: "C-d", Command: "half_page_down"},

		// Goto sub-table
		{Keys: "g g", Command: "goto_file_start"},
		{Keys: "g e", Command: "goto_last_line"},
		{Keys: "g h", Command: "goto_line_start"},
		{Keys: "g l", Command: "goto_line_end"},
		{Keys: "g s", Command: "goto_first_nonwhitespace"},
		{Keys: "g t", Command: "goto_window_top"},
		{Keys: "g c", Command: "goto_window_center"},
		{Keys: "g b", Command: "goto_window_bottom"},
		{Keys: "g d", Command: "goto_definition"},
		{Keys: "g r", Command: "goto_reference"},
		{Keys: "g .", Command: "goto_last_modification"},

		// Selection
		{Keys: "x", Command: "extend_line_below"},
		{Keys: "X", Command: "extend_to_line_bounds"},
		{Keys: "%", Command: "select_all"},
		{Keys: "s", Command: "select_regex"},
		{Keys: ";", Command: "collapse_selection"},
		{Keys: "A-;", Command: "flip_selections"},

		// Changes
		{Keys: "d", Command: "delete_selection"},
		{Keys: "c", Command: "change_selection"},
		{Keys: "y", Command: "yank"},
		{Keys: "p", Command: "paste_after"},
		{Keys: "P", Command: "paste_before"},
		{Keys: "r", Command: "replace"},
		{Keys: "R", Command: "replace_with_yanked"},
		{Keys: "J", Command: "join_selections"},
		{Keys: ">", Command: "indent"},
		{Keys: "<", Command: "unindent"},
		{Keys: "u", Command: "undo"},
		{Keys: "U", Command: "redo"},
		{Keys: "~", Command: "switch_case"},

		// Mode switching
		{Keys: "i", Command: "insert_mode"},
		{Keys: "I", Command: "insert_at_line_start"},
		{Keys: "a", Command: "append_mode"},
		{Keys: "A", Command: "insert_at_line_end"},
		{Keys: "o", Command: "open_below"},
		{Keys: "O", Command: "open_above"},
		{Keys: "v", Command: "select_mode"},

		// Search
		{Keys: "/", Command: "search"},
		{Keys: "?", Command: "rsearch"},
		{Keys: "n", Command: "search_next"},
		{Keys: "N", Command: "search_prev"},
		{Keys: "*", Command: "search_selection"},

		// Space sub-table
		{Keys: "space f", Command: "file_picker"},
		{Keys: "space b", Command: "buffer_picker"},
		{Keys: "space s", Command: "symbol_picker"},
		{Keys: "space k", Command: "hover"},
		{Keys: "space r", Command: "rename_symbol"},
		{Keys: "space w", Command: "window_mode"},
		{Keys: "space y", Command: "yank_to_clipboard"},
		{Keys: "space p", Command: "paste_clipboard_after"},
		{Keys: "space /", Command: "global_search"},

		// View sub-table
		{Keys: "z z", Command: "align_view_center"},
		{Keys: "z t", Command: "align_view_top"},
		{Keys: "z b", Command: "align_view_bottom"},
		{Keys: "z j", Command: "scroll_down"},
		{Keys: "z k", Command: "scroll_up"},

		// Misc
		{Keys: "esc", Command: "normal_mode"},
		{Keys: ":", Command: "command_mode"},
		{Keys: "C-s", Command: "save_selection"},
		{Keys: "C-c", Command: "toggle_comments"},
		{Keys: "C-w", Command: "window_mode"},
	})
}

// defaultSelectKeys returns default select mode bindings. Select mode
// inherits the movement model of normal mode with extending variants.
func defaultSelectKeys() *keytree.Trie {
	return build([]binding{
		{Keys: "h", Command: "extend_char_left"},
		{Keys: "j", Command: "extend_line_down"},
		{Keys: "k", Command: "extend_line_up"},
		{Keys: "l", Command: "extend_char_right"},
		{Keys: "left", Command: "extend_char_left"},
		{Keys: "down", Command: "extend_line_down"},
		{Keys: "up", Command: "extend_line_up"},
		{Keys: "right", Command: "extend_char_right"},
		{Keys: "w", Command: "extend_next_word_start"},
		{Keys: "b", Command: "extend_prev_word_start"},
		{Keys: "e", Command: "extend_next_word_end"},
		{Keys: "t", Command: "extend_till_char"},
		{Keys: "f", Command: "extend_next_char"},
		{Keys: "T", Command: "extend_till_prev_char"},
		{Keys: "F", Command: "extend_prev_char"},
		{Keys: "g g", Command: "extend_to_file_start"},
		{Keys: "g e", Command: "extend_to_last_line"},
		{Keys: "d", Command: "delete_selection"},
		{Keys: "c", Command: "change_selection"},
		{Keys: "y", Command: "yank"},
		{Keys: "v", Command: "normal_mode"},
		{Keys: "esc", Command: "exit_select_mode"},
	})
}

// defaultInsertKeys returns default insert mode bindings.
func defaultInsertKeys() *keytree.Trie {
	return build([]binding{
		{Keys: "esc", Command: "normal_mode"},
		{Keys: "backspace", Command: "delete_char_backward"},
		{Keys: "del", Command: "delete_char_forward"},
		{Keys: "ret", Command: "insert_newline"},
		{Keys: "tab", Command: "insert_tab"},
		{Keys: "up", Command: "move_line_up"},
		{Keys: "down", Command: "move_line_down"},
		{Keys: "left", Command: "move_char_left"},
		{Keys: "right", Command: "move_char_right"},
		{Keys: "home", Command: "goto_line_start"},
		{Keys: "end", Command: "goto_line_end"},
		{Keys: "pageup", Command: "page_up"},
		{Keys: "pagedown", Command: "page_down"},
		{Keys: "C-w", Command: "delete_word_backward"},
		{Keys: "C-u", Command: "kill_to_line_start"},
		{Keys: "C-k", Command: "kill_to_line_end"},
		{Keys: "C-x", Command: "completion"},
		{Keys: "C-r", Command: "insert_register"},
	})
}

// build assembles a trie from a binding list. Multi-key sequences create
// nested nodes along the path.
func build(bindings []binding) *keytree.Trie {
	root := keytree.NewNode()
	for _, b := range bindings {
		events, err := key.ParseSequence(b.Keys)
		if err != nil {
			panic("invalid default binding " + b.Keys + ": " + err.Error())
		}
		node := root
		for _, ev := range events[:len(events)-1] {
			sub := node.Children[ev]
			if sub == nil || !sub.IsNode() {
				sub = keytree.NewNode()
				node.Bind(ev, sub)
			}
			node = sub
		}
		node.Bind(events[len(events)-1], keytree.NewLeaf(b.Command))
	}
	return root
}
