package config

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

// EditorSettings holds the strongly-typed editor behavior settings.
// Field names use the kebab-case keys of the [editor] table.
type EditorSettings struct {
	ScrollOff            int      `toml:"scrolloff"`
	ScrollLines          int      `toml:"scroll-lines"`
	Mouse                bool     `toml:"mouse"`
	MiddleClickPaste     bool     `toml:"middle-click-paste"`
	LineNumber           string   `toml:"line-number"`
	CursorLine           bool     `toml:"cursorline"`
	CursorColumn         bool     `toml:"cursorcolumn"`
	AutoCompletion       bool     `toml:"auto-completion"`
	AutoFormat           bool     `toml:"auto-format"`
	AutoSave             bool     `toml:"auto-save"`
	IdleTimeout          int      `toml:"idle-timeout"`
	CompletionTriggerLen int      `toml:"completion-trigger-len"`
	AutoInfo             bool     `toml:"auto-info"`
	TrueColor            bool     `toml:"true-color"`
	Rulers               []int    `toml:"rulers"`
	BufferLine           string   `toml:"bufferline"`
	ColorModes           bool     `toml:"color-modes"`
	TextWidth            int      `toml:"text-width"`
	DefaultLineEnding    string   `toml:"default-line-ending"`
	InsertFinalNewline   bool     `toml:"insert-final-newline"`
	Shell                []string `toml:"shell"`

	Search       SearchSettings      `toml:"search"`
	FilePicker   FilePickerSettings  `toml:"file-picker"`
	IndentGuides IndentGuideSettings `toml:"indent-guides"`
	SoftWrap     SoftWrapSettings    `toml:"soft-wrap"`
	Whitespace   WhitespaceSettings  `toml:"whitespace"`
}

// SearchSettings configures interactive search behavior.
type SearchSettings struct {
	SmartCase  bool `toml:"smart-case"`
	WrapAround bool `toml:"wrap-around"`
}

// FilePickerSettings configures which files the picker shows.
type FilePickerSettings struct {
	Hidden           bool `toml:"hidden"`
	FollowSymlinks   bool `toml:"follow-symlinks"`
	DeduplicateLinks bool `toml:"deduplicate-links"`
	Parents          bool `toml:"parents"`
	Ignore           bool `toml:"ignore"`
	GitIgnore        bool `toml:"git-ignore"`
	GitGlobal        bool `toml:"git-global"`
	GitExclude       bool `toml:"git-exclude"`
	MaxDepth         int  `toml:"max-depth"`
}

// IndentGuideSettings configures indent guide rendering.
type IndentGuideSettings struct {
	Render     bool   `toml:"render"`
	Character  string `toml:"character"`
	SkipLevels int    `toml:"skip-levels"`
}

// SoftWrapSettings configures soft line wrapping.
type SoftWrapSettings struct {
	Enable          bool   `toml:"enable"`
	MaxWrap         int    `toml:"max-wrap"`
	MaxIndentRetain int    `toml:"max-indent-retain"`
	WrapIndicator   string `toml:"wrap-indicator"`
	WrapAtTextWidth bool   `toml:"wrap-at-text-width"`
}

// WhitespaceSettings configures whitespace rendering.
type WhitespaceSettings struct {
	Render     string               `toml:"render"`
	Characters WhitespaceCharacters `toml:"characters"`
}

// WhitespaceCharacters maps whitespace kinds to display characters.
type WhitespaceCharacters struct {
	Space   string `toml:"space"`
	Nbsp    string `toml:"nbsp"`
	Tab     string `toml:"tab"`
	Newline string `toml:"newline"`
	Tabpad  string `toml:"tabpad"`
}

// DefaultEditorSettings returns the documented editor defaults.
func DefaultEditorSettings() EditorSettings {
	return EditorSettings{
		ScrollOff:            5,
		ScrollLines:          3,
		Mouse:                true,
		MiddleClickPaste:     true,
		LineNumber:           "absolute",
		CursorLine:           false,
		CursorColumn:         false,
		AutoCompletion:       true,
		AutoFormat:           true,
		AutoSave:             false,
		IdleTimeout:          250,
		CompletionTriggerLen: 2,
		AutoInfo:             true,
		TrueColor:            false,
		Rulers:               nil,
		BufferLine:           "never",
		ColorModes:           false,
		TextWidth:            80,
		DefaultLineEnding:    "native",
		InsertFinalNewline:   true,
		Shell:                []string{"sh", "-c"},
		Search: SearchSettings{
			SmartCase:  true,
			WrapAround: true,
		},
		FilePicker: FilePickerSettings{
			FollowSymlinks:   true,
			DeduplicateLinks: true,
			Parents:          true,
			Ignore:           true,
			GitIgnore:        true,
			GitGlobal:        true,
			GitExclude:       true,
		},
		IndentGuides: IndentGuideSettings{
			Render:    false,
			Character: "│",
		},
		SoftWrap: SoftWrapSettings{
			Enable:          false,
			MaxWrap:         20,
			MaxIndentRetain: 40,
			WrapIndicator:   "↪",
		},
		Whitespace: WhitespaceSettings{
			Render: "none",
			Characters: WhitespaceCharacters{
				Space:   "·",
				Nbsp:    "⍽",
				Tab:     "→",
				Newline: "⏎",
				Tabpad:  " ",
			},
		},
	}
}

// materializeEditor converts a fully merged opaque editor value into
// typed settings. Absent values yield the defaults; fields the value
// does not mention keep their defaults. Unknown fields and type
// mismatches are structural failures attributed to source.
func materializeEditor(source string, v any) (EditorSettings, error) {
	settings := DefaultEditorSettings()
	if v == nil {
		return settings, nil
	}

	// Round-trip through TOML so the strict decoder performs the
	// schema check against the typed record.
	data, err := toml.Marshal(v)
	if err != nil {
		return EditorSettings{}, badConfig(source, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		return EditorSettings{}, badConfig(source, err)
	}
	return settings, nil
}
