package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got, want := ConfigDir(), filepath.Join("/tmp/xdg", "squall"); got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got, want := ConfigFile(), filepath.Join("/tmp/xdg", "squall", "config.toml"); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestFindWorkspace(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".squall"), 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "pkg")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if got := FindWorkspace(nested); got != root {
		t.Errorf("FindWorkspace(%q) = %q, want %q", nested, got, root)
	}
}

func TestFindWorkspaceGitMarker(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if got := FindWorkspace(nested); got != root {
		t.Errorf("FindWorkspace(%q) = %q, want %q", nested, got, root)
	}
}

func TestFindWorkspaceNoMarker(t *testing.T) {
	dir := t.TempDir()
	if got := FindWorkspace(dir); got != dir {
		t.Errorf("FindWorkspace(%q) = %q, want the directory itself", dir, got)
	}
}

func TestOSFSReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("theme = \"nord\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := DefaultFS()
	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(data) != "theme = \"nord\"\n" {
		t.Errorf("ReadFile = %q", data)
	}

	if _, err := fs.ReadFile(filepath.Join(dir, "absent.toml")); !os.IsNotExist(err) {
		t.Errorf("missing file error = %v, want IsNotExist", err)
	}
}
