// Package config resolves the editor's hierarchical configuration.
//
// Two documents feed a load: the user's global config.toml and an
// optional workspace config. Each may set a theme, keybinding overrides
// per mode, an [editor] settings table, and [[language]] override
// blocks. Resolution reconciles three precedence axes at once:
//
//   - global vs. workspace: workspace values win;
//   - base vs. per-language: a language's overrides layer onto the
//     already-resolved base, never onto the raw defaults;
//   - within editor settings: tables merge structurally up to a bounded
//     depth, scalars are overridden outright.
//
// # Error model
//
// A document that cannot be read (missing, unreadable) simply
// contributes nothing. A document that parses but violates the strict
// schema aborts the whole load; well-formed input is never merged with
// malformed input. When both documents fail the same way, the global
// document's error is reported.
//
// # Usage
//
// Resolve from the standard file locations:
//
//	cfg, err := config.LoadDefault()
//
// Resolve from in-memory documents (tests, embedding):
//
//	cfg, err := config.Load(config.Available(globalTOML), config.Unavailable(err))
//
// Loading is a pure computation over its inputs with no shared state;
// concurrent loads need no synchronization.
package config
