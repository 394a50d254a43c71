package loader

import (
	"os"
	"path/filepath"
)

// configFileName is the name of both the user and workspace config file.
const configFileName = "config.toml"

// workspaceDirName marks a workspace root and holds its config.
const workspaceDirName = ".squall"

// ConfigDir returns the user configuration directory, honoring
// XDG_CONFIG_HOME when set.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "squall")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "squall")
}

// ConfigFile returns the path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// WorkspaceConfigFile returns the path of the workspace configuration
// file for the current working directory's workspace.
func WorkspaceConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return filepath.Join(FindWorkspace(cwd), workspaceDirName, configFileName)
}

// FindWorkspace walks up from dir looking for a directory containing
// .squall or .git. Returns dir itself when no marker is found.
func FindWorkspace(dir string) string {
	current := dir
	for {
		for _, marker := range []string{workspaceDirName, ".git"} {
			if info, err := os.Stat(filepath.Join(current, marker)); err == nil && info.IsDir() {
				return current
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}
		current = parent
	}
}
