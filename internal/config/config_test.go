package config

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/squall/internal/input/key"
	"github.com/dshills/squall/internal/input/keymap"
	"github.com/dshills/squall/internal/input/keytree"
	"github.com/dshills/squall/internal/input/mode"
)

func mustLoad(t *testing.T, global, local Text) *Config {
	t.Helper()
	cfg, err := Load(global, local)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return cfg
}

func loadGlobal(t *testing.T, doc string) *Config {
	t.Helper()
	return mustLoad(t, Available([]byte(doc)), Unavailable(fs.ErrNotExist))
}

func binding(t *testing.T, keys keymap.Keys, m mode.Mode, seq string) string {
	t.Helper()
	events, err := key.ParseSequence(seq)
	if err != nil {
		t.Fatalf("bad sequence %q: %v", seq, err)
	}
	trie := keys[m].Find(events...)
	if trie == nil {
		t.Fatalf("no binding for %v %q", m, seq)
	}
	return trie.Command
}

func TestLoadBothUnavailableReturnsGlobalError(t *testing.T) {
	globalErr := errors.New("global gone")
	localErr := errors.New("local gone")

	_, err := Load(Unavailable(globalErr), Unavailable(localErr))
	if !errors.Is(err, globalErr) {
		t.Errorf("error = %v, want the global document's error", err)
	}
}

func TestLoadOrDefaultCompleteness(t *testing.T) {
	cfg, err := LoadOrDefault(Unavailable(fs.ErrNotExist), Unavailable(fs.ErrNotExist))
	if err != nil {
		t.Fatalf("LoadOrDefault error: %v", err)
	}

	if cfg.Theme != "" {
		t.Errorf("Theme = %q, want empty", cfg.Theme)
	}
	if !keymap.Equal(cfg.Keys, keymap.Default()) {
		t.Error("Keys differ from the built-in defaults")
	}
	if diff := cmp.Diff(DefaultEditorSettings(), cfg.Editor); diff != "" {
		t.Errorf("Editor differs from defaults (-want +got):\n%s", diff)
	}
	if len(cfg.ThemeLang)+len(cfg.KeysLang)+len(cfg.EditorLang) != 0 {
		t.Error("language tables not empty")
	}
}

func TestLoadOrDefaultStillPropagatesStructural(t *testing.T) {
	_, err := LoadOrDefault(Available([]byte("no-such-field = 1")), Unavailable(fs.ErrNotExist))
	if !errors.Is(err, ErrBadConfig) {
		t.Errorf("error = %v, want ErrBadConfig", err)
	}
}

func TestThemeLocalWins(t *testing.T) {
	cfg := mustLoad(t,
		Available([]byte(`theme = "dracula"`)),
		Available([]byte(`theme = "nord"`)),
	)
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, want nord", cfg.Theme)
	}
}

func TestThemeFallsBackToGlobal(t *testing.T) {
	cfg := mustLoad(t,
		Available([]byte(`theme = "dracula"`)),
		Available([]byte("")),
	)
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, want dracula", cfg.Theme)
	}
}

func TestKeymapLayering(t *testing.T) {
	global := `
[keys.insert]
y = "move_line_down"
S-C-a = "delete_selection"
`
	local := `
[keys.normal]
A-F12 = "move_next_word_end"
`
	cfg := mustLoad(t, Available([]byte(global)), Available([]byte(local)))

	if got := binding(t, cfg.Keys, mode.Insert, "y"); got != "move_line_down" {
		t.Errorf("insert y = %q", got)
	}
	if got := binding(t, cfg.Keys, mode.Insert, "S-C-a"); got != "delete_selection" {
		t.Errorf("insert S-C-a = %q", got)
	}
	if got := binding(t, cfg.Keys, mode.Normal, "A-F12"); got != "move_next_word_end" {
		t.Errorf("normal A-F12 = %q", got)
	}

	// Everything else still matches the defaults.
	want := keymap.Default()
	keymap.MergeKeys(want, keymap.Keys{
		mode.Insert: mustTrie(t, map[string]any{"y": "move_line_down", "S-C-a": "delete_selection"}),
		mode.Normal: mustTrie(t, map[string]any{"A-F12": "move_next_word_end"}),
	})
	if !keymap.Equal(cfg.Keys, want) {
		t.Error("resolved keys differ from defaults plus overrides")
	}
}

func TestConflictingBindingLocalWins(t *testing.T) {
	global := `
[keys.normal]
y = "yank"
`
	local := `
[keys.normal]
y = "yank_to_clipboard"
`
	cfg := mustLoad(t, Available([]byte(global)), Available([]byte(local)))
	if got := binding(t, cfg.Keys, mode.Normal, "y"); got != "yank_to_clipboard" {
		t.Errorf("normal y = %q, want workspace override", got)
	}
}

func TestSingleDocumentEquivalence(t *testing.T) {
	doc := `
theme = "gruvbox"

[keys.normal]
A-F12 = "move_next_word_end"

[editor]
scrolloff = 9
`
	withMissing := mustLoad(t, Available([]byte(doc)), Unavailable(fs.ErrNotExist))
	withEmpty := mustLoad(t, Available([]byte(doc)), Available([]byte("")))

	if withMissing.Theme != withEmpty.Theme {
		t.Errorf("themes differ: %q vs %q", withMissing.Theme, withEmpty.Theme)
	}
	if !keymap.Equal(withMissing.Keys, withEmpty.Keys) {
		t.Error("keys differ between missing and empty workspace doc")
	}
	if diff := cmp.Diff(withMissing.Editor, withEmpty.Editor); diff != "" {
		t.Errorf("editor settings differ:\n%s", diff)
	}
}

func TestLocalOnlyDocument(t *testing.T) {
	cfg := mustLoad(t,
		Unavailable(fs.ErrNotExist),
		Available([]byte(`theme = "nord"`)),
	)
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, want nord", cfg.Theme)
	}
	if !keymap.Equal(cfg.Keys, keymap.Default()) {
		t.Error("keys differ from defaults")
	}
}

func TestMalformedAlwaysWins(t *testing.T) {
	_, err := Load(
		Available([]byte("theme = ")), // syntax error
		Available([]byte(`theme = "nord"`)),
	)
	if !errors.Is(err, ErrBadConfig) {
		t.Fatalf("error = %v, want ErrBadConfig", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Source != sourceGlobal {
		t.Errorf("error attributed to %v, want global", err)
	}
}

func TestMalformedLocalWinsOverAvailableGlobal(t *testing.T) {
	_, err := Load(
		Available([]byte(`theme = "nord"`)),
		Available([]byte("unknown-field = true")),
	)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Source != sourceWorkspace {
		t.Errorf("error = %v, want workspace parse error", err)
	}
}

func TestBothMalformedGlobalWinsTie(t *testing.T) {
	_, err := Load(
		Available([]byte("bad-global = true")),
		Available([]byte("bad-local = true")),
	)
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Source != sourceGlobal {
		t.Errorf("error = %v, want global parse error", err)
	}
}

func TestStructuralOutranksAvailability(t *testing.T) {
	_, err := Load(
		Unavailable(fs.ErrNotExist),
		Available([]byte("bad-local = true")),
	)
	if !errors.Is(err, ErrBadConfig) {
		t.Errorf("error = %v, want the structural failure, not the availability one", err)
	}
}

func TestUnknownFieldsRejected(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"top level", "colour = \"red\""},
		{"inside language block", "[[language]]\nname = \"rust\"\nformatter = \"rustfmt\""},
		{"wrong value type", "theme = 5"},
		{"keys not a table", "keys = 5"},
		{"unknown mode", "[keys.visual]\ny = \"yank\""},
		{"bad key spec", "[keys.normal]\n\"Q-x\" = \"quit\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(Available([]byte(tt.doc)), Unavailable(fs.ErrNotExist))
			if !errors.Is(err, ErrBadConfig) {
				t.Errorf("error = %v, want ErrBadConfig", err)
			}
		})
	}
}

func TestEditorSettingsMergeAcrossDocuments(t *testing.T) {
	global := `
[editor]
scrolloff = 11

[editor.search]
smart-case = false
`
	local := `
[editor.search]
wrap-around = false
`
	cfg := mustLoad(t, Available([]byte(global)), Available([]byte(local)))

	want := DefaultEditorSettings()
	want.ScrollOff = 11
	want.Search.SmartCase = false
	want.Search.WrapAround = false
	if diff := cmp.Diff(want, cfg.Editor); diff != "" {
		t.Errorf("editor mismatch (-want +got):\n%s", diff)
	}
}

func TestLanguageIsolation(t *testing.T) {
	doc := `
[[language]]
name = "rust"

[language.keys.normal]
g = { d = "goto_type_definition" }
`
	cfg := loadGlobal(t, doc)

	if _, ok := cfg.ThemeLang["rust"]; ok {
		t.Error("keys-only override populated ThemeLang")
	}
	if _, ok := cfg.EditorLang["rust"]; ok {
		t.Error("keys-only override populated EditorLang")
	}

	keys, ok := cfg.KeysLang["rust"]
	if !ok {
		t.Fatal("KeysLang missing rust")
	}
	want := keymap.Clone(cfg.Keys)
	keymap.MergeKeys(want, keymap.Keys{
		mode.Normal: mustTrie(t, map[string]any{"g": map[string]any{"d": "goto_type_definition"}}),
	})
	if !keymap.Equal(keys, want) {
		t.Error("rust keys differ from base plus override")
	}
}

func TestLanguageKeysLayerOntoResolvedBase(t *testing.T) {
	doc := `
[keys.normal]
A-F12 = "move_next_word_end"

[[language]]
name = "go"

[language.keys.insert]
C-y = "accept_suggestion"
`
	cfg := loadGlobal(t, doc)

	keys := cfg.KeysLang["go"]
	if keys == nil {
		t.Fatal("KeysLang missing go")
	}
	// The base-level override is visible through the language table,
	// proving layering started from the resolved base, not raw defaults.
	if got := binding(t, keys, mode.Normal, "A-F12"); got != "move_next_word_end" {
		t.Errorf("language table lost base override: %q", got)
	}
	if got := binding(t, keys, mode.Insert, "C-y"); got != "accept_suggestion" {
		t.Errorf("insert C-y = %q", got)
	}
	// Complete mode table.
	for _, m := range mode.All() {
		if keys[m] == nil {
			t.Errorf("language table missing mode %v", m)
		}
	}
}

func TestLanguageOverridesAcrossDocuments(t *testing.T) {
	global := `
[[language]]
name = "rust"
theme = "gruvbox"

[language.editor]
text-width = 100

[[language]]
name = "python"
theme = "solarized"
`
	local := `
[[language]]
name = "rust"
theme = "nord"

[language.editor.search]
smart-case = false
`
	cfg := mustLoad(t, Available([]byte(global)), Available([]byte(local)))

	if got := cfg.ThemeLang["rust"]; got != "nord" {
		t.Errorf("rust theme = %q, want workspace override", got)
	}
	if got := cfg.ThemeLang["python"]; got != "solarized" {
		t.Errorf("python theme = %q", got)
	}

	rust, ok := cfg.EditorLang["rust"]
	if !ok {
		t.Fatal("EditorLang missing rust")
	}
	want := DefaultEditorSettings()
	want.TextWidth = 100
	want.Search.SmartCase = false
	if diff := cmp.Diff(want, rust); diff != "" {
		t.Errorf("rust editor mismatch (-want +got):\n%s", diff)
	}

	// python set no editor overrides anywhere.
	if _, ok := cfg.EditorLang["python"]; ok {
		t.Error("EditorLang has python entry despite no editor override")
	}
}

func TestLanguageEditorLayersOntoBaseEditor(t *testing.T) {
	doc := `
[editor]
scrolloff = 11

[[language]]
name = "go"

[language.editor]
text-width = 100
`
	cfg := loadGlobal(t, doc)

	goSettings, ok := cfg.EditorLang["go"]
	if !ok {
		t.Fatal("EditorLang missing go")
	}
	if goSettings.ScrollOff != 11 {
		t.Errorf("ScrollOff = %d, want the base override 11", goSettings.ScrollOff)
	}
	if goSettings.TextWidth != 100 {
		t.Errorf("TextWidth = %d, want 100", goSettings.TextWidth)
	}
}

func TestLanguageMaterializationErrorAbortsLoad(t *testing.T) {
	doc := `
theme = "nord"

[[language]]
name = "rust"

[language.editor]
scrollofff = 3
`
	_, err := Load(Available([]byte(doc)), Unavailable(fs.ErrNotExist))
	if !errors.Is(err, ErrBadConfig) {
		t.Errorf("error = %v, want ErrBadConfig", err)
	}
}

func TestDuplicateLanguageLastWins(t *testing.T) {
	doc := `
[[language]]
name = "rust"
theme = "gruvbox"

[[language]]
name = "rust"
theme = "nord"
`
	cfg := loadGlobal(t, doc)
	if got := cfg.ThemeLang["rust"]; got != "nord" {
		t.Errorf("rust theme = %q, want last occurrence", got)
	}
}

func TestLanguageWithoutNameRejected(t *testing.T) {
	doc := `
[[language]]
theme = "nord"
`
	_, err := Load(Available([]byte(doc)), Unavailable(fs.ErrNotExist))
	if !errors.Is(err, ErrBadConfig) {
		t.Errorf("error = %v, want ErrBadConfig", err)
	}
}

func TestConcurrentLoads(t *testing.T) {
	doc := []byte(`theme = "nord"`)
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := Load(Available(doc), Unavailable(fs.ErrNotExist))
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent Load error: %v", err)
		}
	}
}

func mustTrie(t *testing.T, v map[string]any) *keytree.Trie {
	t.Helper()
	trie, err := keytree.FromValue(v)
	if err != nil {
		t.Fatalf("bad trie literal: %v", err)
	}
	return trie
}
