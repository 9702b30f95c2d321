package layout

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/homefiles/pkg/errors"
	"github.com/arthur-debert/homefiles/pkg/types"
)

// Stripper turns a file path below dir into its destination path
type Stripper interface {
	Layout() types.Layout
	Strip(file, dir string) (string, error)
}

// For returns the Stripper implementing layout l
func For(l types.Layout) (Stripper, error) {
	switch l {
	case types.LayoutPlain:
		return Plain{}, nil
	case types.LayoutStow:
		return Stow{}, nil
	default:
		return nil, errors.Newf(errors.ErrLayoutInvalid, "no stripper for layout %s", l).
			WithDetail("layout", l.String())
	}
}

// Plain strips the directory prefix and keeps the remainder verbatim
type Plain struct{}

// Layout implements Stripper
func (Plain) Layout() types.Layout { return types.LayoutPlain }

// Strip implements Stripper
func (Plain) Strip(file, dir string) (string, error) {
	segments, err := relativeSegments(file, dir)
	if err != nil {
		return "", err
	}
	return strings.Join(segments, "/"), nil
}

// Stow strips the directory prefix and then the package segment
type Stow struct{}

// Layout implements Stripper
func (Stow) Layout() types.Layout { return types.LayoutStow }

// Strip implements Stripper
func (Stow) Strip(file, dir string) (string, error) {
	segments, err := relativeSegments(file, dir)
	if err != nil {
		return "", err
	}
	if len(segments) < 2 {
		return "", errors.Newf(errors.ErrPackageMissing,
			"file %s sits directly in stow directory %s; stow layout needs a package directory", file, dir).
			WithDetail("file", file).
			WithDetail("directory", dir)
	}
	return strings.Join(segments[1:], "/"), nil
}

// relativeSegments removes dir from file and splits the rest on the path
// separator. Both paths are cleaned first, so trailing or doubled
// separators in dir do not matter.
func relativeSegments(file, dir string) ([]string, error) {
	rel, err := filepath.Rel(dir, file)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		reason := fmt.Sprintf("file %s is not inside directory %s", file, dir)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrPathOutsideDir, reason).
				WithDetail("file", file).
				WithDetail("directory", dir)
		}
		return nil, errors.New(errors.ErrPathOutsideDir, reason).
			WithDetail("file", file).
			WithDetail("directory", dir)
	}
	return strings.Split(filepath.ToSlash(rel), "/"), nil
}
