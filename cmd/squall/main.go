// Package main is the entry point for the Squall editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/squall/internal/config"
	"github.com/dshills/squall/internal/config/loader"
	"github.com/dshills/squall/internal/input/keymap"
	"github.com/dshills/squall/internal/input/mode"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("squall %s (%s, built %s)\n", version, commit, date)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		if errors.Is(err, config.ErrBadConfig) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		// No config anywhere is fine; run with defaults.
		cfg = config.Default()
	}

	if opts.checkConfig {
		fmt.Println("configuration ok")
		return 0
	}

	if opts.showConfig {
		printConfig(cfg)
		return 0
	}

	// TODO(dshills): start the editor UI once the renderer lands.
	fmt.Fprintln(os.Stderr, "squall: no editor UI yet; try -show-config or -check")
	return 0
}

type options struct {
	configPath    string
	workspacePath string
	checkConfig   bool
	showConfig    bool
	showVersion   bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to the global configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to the global configuration file (shorthand)")
	flag.StringVar(&opts.workspacePath, "workspace-config", "", "Path to the workspace configuration file")
	flag.BoolVar(&opts.checkConfig, "check", false, "Validate configuration and exit")
	flag.BoolVar(&opts.showConfig, "show-config", false, "Print the resolved configuration and exit")
	flag.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flag.Parse()

	return opts
}

// loadConfig resolves configuration from the standard locations, with
// flag overrides for either path.
func loadConfig(opts options) (*config.Config, error) {
	globalPath := opts.configPath
	if globalPath == "" {
		globalPath = loader.ConfigFile()
	}
	workspacePath := opts.workspacePath
	if workspacePath == "" {
		workspacePath = loader.WorkspaceConfigFile()
	}

	fs := loader.DefaultFS()
	globalData, globalErr := fs.ReadFile(globalPath)
	localData, localErr := fs.ReadFile(workspacePath)

	global := config.Available(globalData)
	if globalErr != nil {
		global = config.Unavailable(globalErr)
	}
	local := config.Available(localData)
	if localErr != nil {
		local = config.Unavailable(localErr)
	}

	return config.Load(global, local)
}

// printConfig writes a readable summary of the resolved configuration.
func printConfig(cfg *config.Config) {
	if cfg.Theme != "" {
		fmt.Printf("theme = %q\n", cfg.Theme)
	}
	for _, lang := range sortedKeys(cfg.ThemeLang) {
		fmt.Printf("theme (%s) = %q\n", lang, cfg.ThemeLang[lang])
	}

	fmt.Println("\n[editor]")
	out, err := toml.Marshal(cfg.Editor)
	if err == nil {
		os.Stdout.Write(out)
	}

	for _, m := range sortedModes(cfg.Keys) {
		fmt.Printf("\n[keys.%s]\n%s\n", m, cfg.Keys[m])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedModes(keys keymap.Keys) []mode.Mode {
	modes := make([]mode.Mode, 0, len(keys))
	for m := range keys {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}
