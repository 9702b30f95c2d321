package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/homefiles/pkg/filesystem"
	"github.com/arthur-debert/homefiles/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// FileTree represents a directory structure for testing.
// Values are either file contents (string), nested trees (FileTree) or
// symlinks (Link).
type FileTree map[string]interface{}

// Link declares a symlink inside a FileTree
type Link struct {
	Target string
}

// TreeWriter is the write surface needed to materialize a FileTree
type TreeWriter interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Symlink(target, link string) error
}

// TestEnvironment provides a source root backed by either a MemoryFS or a
// temp directory
type TestEnvironment struct {
	// SourceRoot is the absolute anchor for relative directory references
	SourceRoot string

	FS   types.FS
	Type EnvType

	t      *testing.T
	writer TreeWriter
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		mem := NewMemoryFS()
		env.SourceRoot = "/dotfiles"
		env.FS = mem
		env.writer = mem
	case EnvIsolated:
		env.SourceRoot = filepath.Join(t.TempDir(), "dotfiles")
		env.FS = filesystem.NewOS()
		env.writer = osWriter{}
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	if err := env.writer.MkdirAll(env.SourceRoot, 0755); err != nil {
		t.Fatalf("Failed to create source root: %v", err)
	}
	return env
}

// Path joins parts onto the source root
func (env *TestEnvironment) Path(parts ...string) string {
	return filepath.Join(append([]string{env.SourceRoot}, parts...)...)
}

// WithFileTree creates tree under the source root
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	CreateFileTree(env.t, env.writer, env.SourceRoot, tree)
	return env
}

// WithFileTreeAt creates tree under an absolute base path
func (env *TestEnvironment) WithFileTreeAt(base string, tree FileTree) *TestEnvironment {
	env.t.Helper()
	CreateFileTree(env.t, env.writer, base, tree)
	return env
}

// CreateFileTree recursively creates a file tree
func CreateFileTree(t *testing.T, w TreeWriter, basePath string, tree FileTree) {
	t.Helper()

	if err := w.MkdirAll(basePath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", basePath, err)
	}

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := w.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			CreateFileTree(t, w, fullPath, v)
		case Link:
			if err := w.Symlink(v.Target, fullPath); err != nil {
				t.Fatalf("Failed to create symlink %s: %v", fullPath, err)
			}
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

type osWriter struct{}

func (osWriter) WriteFile(name string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	return os.WriteFile(name, data, perm)
}

func (osWriter) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

func (osWriter) Symlink(target, link string) error { return os.Symlink(target, link) }
