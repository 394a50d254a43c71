package config

import (
	"github.com/dshills/squall/internal/config/loader"
	"github.com/dshills/squall/internal/input/keymap"
)

// Document source names used in error reporting.
const (
	sourceGlobal    = "global"
	sourceWorkspace = "workspace"
)

// Config is a fully resolved configuration: the global and workspace
// documents reconciled with the built-in defaults, plus per-language
// override tables. A Config is produced once per load and not mutated
// afterwards; reconfiguration means loading again.
type Config struct {
	// Theme is the selected theme name, empty when no document set one.
	Theme string

	// ThemeLang maps language name to a language-specific theme.
	ThemeLang map[string]string

	// Keys is the complete keybinding table: built-in defaults with
	// global then workspace overrides layered on. Every mode is present.
	Keys keymap.Keys

	// KeysLang maps language name to a complete keybinding table derived
	// from Keys with that language's overrides layered on.
	KeysLang map[string]keymap.Keys

	// Editor holds the materialized editor settings.
	Editor EditorSettings

	// EditorLang maps language name to materialized language-specific
	// editor settings.
	EditorLang map[string]EditorSettings
}

// Default returns the configuration used when no document contributes
// anything: built-in keys, default editor settings and no theme.
func Default() *Config {
	return &Config{
		ThemeLang:  make(map[string]string),
		Keys:       keymap.Default(),
		KeysLang:   make(map[string]keymap.Keys),
		Editor:     DefaultEditorSettings(),
		EditorLang: make(map[string]EditorSettings),
	}
}

// Text is the outcome of attempting to read one configuration document:
// either the raw payload or the reason it was unavailable.
type Text struct {
	data []byte
	err  error
}

// Available wraps a successfully read payload.
func Available(data []byte) Text {
	return Text{data: data}
}

// Unavailable records why a document could not be read.
func Unavailable(err error) Text {
	return Text{err: err}
}

// Load resolves the global and workspace configuration documents into a
// single Config.
//
// Each document independently lands in one of three states: well-formed,
// structurally invalid (malformed TOML or a schema violation), or
// unavailable (missing or unreadable). Structural failures are fatal and
// propagate immediately, the global document's failure winning when both
// are invalid. Unavailable documents contribute nothing: resolution
// falls back to the other document, or to built-in defaults when neither
// exists, in which case the global document's read error is returned.
func Load(global, local Text) (*Config, error) {
	globalDoc, globalErr := parseText(sourceGlobal, global)
	localDoc, localErr := parseText(sourceWorkspace, local)

	switch {
	case isParseError(globalErr):
		return nil, globalErr
	case isParseError(localErr):
		return nil, localErr
	case globalErr == nil && localErr == nil:
		return resolve(globalDoc, localDoc)
	case globalErr == nil:
		return resolve(globalDoc, nil)
	case localErr == nil:
		return resolve(nil, localDoc)
	default:
		// Neither document exists; report the global document's error.
		return nil, globalErr
	}
}

// LoadDefault reads the user and workspace configuration files from
// their standard locations and resolves them.
func LoadDefault() (*Config, error) {
	fs := loader.DefaultFS()
	globalData, globalErr := fs.ReadFile(loader.ConfigFile())
	localData, localErr := fs.ReadFile(loader.WorkspaceConfigFile())
	return Load(
		Text{data: globalData, err: globalErr},
		Text{data: localData, err: localErr},
	)
}

// LoadOrDefault resolves like Load but yields the built-in defaults when
// no document could be read at all. Structural failures still propagate;
// a malformed document never silently falls back.
func LoadOrDefault(global, local Text) (*Config, error) {
	cfg, err := Load(global, local)
	if err != nil && !isParseError(err) {
		return Default(), nil
	}
	return cfg, err
}

// parseText turns an availability outcome into a parsed document or an
// error. Read failures pass through as availability failures; parse and
// schema failures come back as *ParseError.
func parseText(source string, t Text) (*document, error) {
	if t.err != nil {
		return nil, t.err
	}
	return parseDocument(source, t.data)
}

// resolve combines up to two well-formed documents. Either side may be
// nil when that document was unavailable; Load guarantees at least one
// side is present.
func resolve(global, local *document) (*Config, error) {
	cfg := &Config{
		ThemeLang:  make(map[string]string),
		KeysLang:   make(map[string]keymap.Keys),
		EditorLang: make(map[string]EditorSettings),
	}

	// Theme: workspace wins, global is the fallback.
	cfg.Theme = pickTheme(themeOf(local), themeOf(global))

	// Keys: overrides layer onto the built-in defaults, global first so
	// workspace bindings win on conflict.
	cfg.Keys = keymap.Default()
	if global != nil {
		keymap.MergeKeys(cfg.Keys, global.keys)
	}
	if local != nil {
		keymap.MergeKeys(cfg.Keys, local.keys)
	}

	// Editor: structural merge of the opaque values first, typed
	// materialization strictly after.
	editorRaw := mergeValues(editorOf(global), editorOf(local), editorMergeDepth)
	editor, err := materializeEditor(sourceOf(global, local), editorRaw)
	if err != nil {
		return nil, err
	}
	cfg.Editor = editor

	if err := resolveLanguages(cfg, global, local, editorRaw); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveLanguages fills the per-language tables for every language
// mentioned by either document. Each language layers its overrides onto
// the already-resolved base: keys onto cfg.Keys, editor settings onto
// the merged-but-unmaterialized base editor value. A field neither
// document touched for a language adds no entry. Materialization errors
// abort the whole load.
func resolveLanguages(cfg *Config, global, local *document, baseEditorRaw any) error {
	globalIdx := languageIndex(global)
	localIdx := languageIndex(local)

	for _, name := range languageNames(global, local) {
		globalOv := globalIdx[name]
		localOv := localIdx[name]

		if theme := pickTheme(overrideTheme(localOv), overrideTheme(globalOv)); theme != "" {
			cfg.ThemeLang[name] = theme
		}

		if overrideKeys(globalOv) != nil || overrideKeys(localOv) != nil {
			keys := keymap.Clone(cfg.Keys)
			keymap.MergeKeys(keys, overrideKeys(globalOv))
			keymap.MergeKeys(keys, overrideKeys(localOv))
			cfg.KeysLang[name] = keys
		}

		if overrideEditor(globalOv) != nil || overrideEditor(localOv) != nil {
			merged := mergeValues(baseEditorRaw, overrideEditor(globalOv), editorMergeDepth)
			merged = mergeValues(merged, overrideEditor(localOv), editorMergeDepth)
			editor, err := materializeEditor("language "+name, merged)
			if err != nil {
				return err
			}
			cfg.EditorLang[name] = editor
		}
	}
	return nil
}

// pickTheme returns the first non-empty theme name.
func pickTheme(themes ...string) string {
	for _, t := range themes {
		if t != "" {
			return t
		}
	}
	return ""
}

func themeOf(doc *document) string {
	if doc == nil {
		return ""
	}
	return doc.theme
}

func editorOf(doc *document) any {
	if doc == nil {
		return nil
	}
	return editorValue(doc.editor)
}

func overrideTheme(ov *languageOverride) string {
	if ov == nil {
		return ""
	}
	return ov.theme
}

func overrideKeys(ov *languageOverride) keymap.Keys {
	if ov == nil {
		return nil
	}
	return ov.keys
}

func overrideEditor(ov *languageOverride) any {
	if ov == nil {
		return nil
	}
	return editorValue(ov.editor)
}

// sourceOf names the document responsible for the base editor value,
// for error attribution: the workspace document when both contributed.
func sourceOf(global, local *document) string {
	if local != nil {
		return sourceWorkspace
	}
	return sourceGlobal
}
