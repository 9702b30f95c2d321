package types

import (
	"io/fs"
)

// FS is the read-only filesystem interface required for resolution.
// Enumeration goes through Lstat and ReadDir so symlinks are reported as
// entries rather than followed.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
}
