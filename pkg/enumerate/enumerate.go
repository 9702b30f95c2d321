// Package enumerate lists the files below a source directory, optionally
// restricted to a set of package subdirectories, skipping excluded names.
package enumerate

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/homefiles/pkg/errors"
	"github.com/arthur-debert/homefiles/pkg/exclude"
	"github.com/arthur-debert/homefiles/pkg/logging"
	"github.com/arthur-debert/homefiles/pkg/types"
	"github.com/rs/zerolog"
)

// Enumerator walks directories through a types.FS
type Enumerator struct {
	fs      types.FS
	matcher *exclude.Matcher
	logger  zerolog.Logger
}

// New creates an Enumerator. A nil matcher excludes nothing.
func New(fsys types.FS, matcher *exclude.Matcher) *Enumerator {
	return &Enumerator{
		fs:      fsys,
		matcher: matcher,
		logger:  logging.GetLogger("enumerate"),
	}
}

// Enumerate returns the absolute paths of all files below dir. When
// packages is non-empty only dir/<package> subtrees are walked, in the
// order given, and their results concatenated.
//
// Entries are visited in lexical order. Symlinks are reported as files and
// never followed. The exclusion matcher applies to file basenames only;
// every directory is descended into whatever its name.
func (e *Enumerator) Enumerate(dir string, packages []string) ([]string, error) {
	roots := []string{dir}
	if len(packages) > 0 {
		roots = make([]string, 0, len(packages))
		for _, pkg := range packages {
			roots = append(roots, filepath.Join(dir, pkg))
		}
	}

	var files []string
	for i, root := range roots {
		if err := e.checkDir(root); err != nil {
			if len(packages) > 0 {
				err = err.WithDetail("package", packages[i])
			}
			return nil, err
		}

		before := len(files)
		var err error
		files, err = e.walk(root, files)
		if err != nil {
			return nil, err
		}

		e.logger.Debug().
			Str("root", root).
			Int("files", len(files)-before).
			Msg("Enumerated directory")
	}

	return files, nil
}

func (e *Enumerator) checkDir(path string) *errors.HomefilesError {
	info, err := e.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrDirNotFound, "source directory %s does not exist", path).
				WithDetail("directory", path)
		}
		return errors.Wrapf(err, errors.ErrDirAccess, "cannot access source directory %s", path).
			WithDetail("directory", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrNotADirectory, "source path %s is not a directory", path).
			WithDetail("directory", path)
	}
	return nil
}

func (e *Enumerator) walk(dir string, files []string) ([]string, error) {
	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirAccess, "cannot read directory %s", dir).
			WithDetail("directory", dir)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.Type()&fs.ModeSymlink == 0 && entry.IsDir() {
			files, err = e.walk(path, files)
			if err != nil {
				return nil, err
			}
			continue
		}

		if e.matcher.Match(name) {
			e.logger.Trace().Str("path", path).Msg("Excluded")
			continue
		}

		files = append(files, path)
	}

	return files, nil
}
