// Package loader locates and reads configuration files.
//
// The loader is the only part of the configuration system that touches
// the filesystem. It resolves the user config path (XDG conventions) and
// the workspace config path (found by walking up from the working
// directory), and reads bytes from them. Parsing and resolution live in
// the parent config package, which treats read failures as "this layer
// contributes nothing".
package loader

import (
	"io/fs"
	"os"
)

// FileSystem is an abstraction for file system reads.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}
