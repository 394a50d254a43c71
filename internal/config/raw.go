package config

import (
	"bytes"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/squall/internal/input/keymap"
)

// rawDocument is the strict on-disk schema of a configuration document.
// Unknown fields at the top level or inside a [[language]] block are a
// structural failure; keys and editor tables are open-ended by nature
// and validated by their own converters.
type rawDocument struct {
	Theme    string         `toml:"theme"`
	Keys     map[string]any `toml:"keys"`
	Editor   map[string]any `toml:"editor"`
	Language []rawLanguage  `toml:"language"`
}

// rawLanguage is a per-language override block.
type rawLanguage struct {
	Name   string         `toml:"name"`
	Theme  string         `toml:"theme"`
	Keys   map[string]any `toml:"keys"`
	Editor map[string]any `toml:"editor"`
}

// document is a parsed and validated configuration document. Keybinding
// tables are already converted to typed tries; the editor value stays
// opaque until after merging.
type document struct {
	theme     string
	keys      keymap.Keys // nil when the document has no [keys] table
	editor    map[string]any
	languages []languageOverride
}

// languageOverride is the validated form of a [[language]] block.
type languageOverride struct {
	name   string
	theme  string
	keys   keymap.Keys
	editor map[string]any
}

// parseDocument parses one configuration document under the strict
// schema. source names the document for error reporting. Any failure
// here is structural.
func parseDocument(source string, data []byte) (*document, error) {
	var raw rawDocument
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, badConfig(source, err)
	}

	doc := &document{
		theme:  raw.Theme,
		editor: raw.Editor,
	}

	if raw.Keys != nil {
		keys, err := keymap.FromConfig(raw.Keys)
		if err != nil {
			return nil, badConfig(source, err)
		}
		doc.keys = keys
	}

	for _, lang := range raw.Language {
		if lang.Name == "" {
			return nil, &ParseError{Source: source, Message: "language override missing name"}
		}
		ov := languageOverride{
			name:   lang.Name,
			theme:  lang.Theme,
			editor: lang.Editor,
		}
		if lang.Keys != nil {
			keys, err := keymap.FromConfig(lang.Keys)
			if err != nil {
				return nil, badConfig(source, err)
			}
			ov.keys = keys
		}
		doc.languages = append(doc.languages, ov)
	}

	return doc, nil
}

// languageIndex collapses a document's override list into a map keyed by
// language name. The last occurrence wins when a name repeats; source
// documents are expected not to repeat names, but resolution must stay
// deterministic when they do.
func languageIndex(doc *document) map[string]*languageOverride {
	if doc == nil {
		return nil
	}
	idx := make(map[string]*languageOverride, len(doc.languages))
	for i := range doc.languages {
		idx[doc.languages[i].name] = &doc.languages[i]
	}
	return idx
}

// languageNames returns the sorted union of language names mentioned by
// either document. Sorting keeps per-language resolution order, and any
// error it surfaces, deterministic.
func languageNames(global, local *document) []string {
	seen := make(map[string]struct{})
	for _, doc := range []*document{global, local} {
		if doc == nil {
			continue
		}
		for _, lang := range doc.languages {
			seen[lang.name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// editorValue unwraps a document's opaque editor table for merging.
// Returns untyped nil when absent so merge helpers see a true nil.
func editorValue(m map[string]any) any {
	if m == nil {
		return nil
	}
	return m
}
