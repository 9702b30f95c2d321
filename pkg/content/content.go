// Package content resolves content references into file bytes.
//
// Resolution never reads file contents; installers that need the bytes, or
// a checksum to detect drift, go through a Loader.
package content

import (
	"github.com/arthur-debert/homefiles/pkg/errors"
	"github.com/arthur-debert/homefiles/pkg/internal/hashutil"
	"github.com/arthur-debert/homefiles/pkg/types"
)

// Loader loads the bytes behind a content reference
type Loader interface {
	Load(ref types.ContentRef) ([]byte, error)
}

type fsLoader struct {
	fs types.FS
}

// NewLoader returns a Loader reading through fsys
func NewLoader(fsys types.FS) Loader {
	return &fsLoader{fs: fsys}
}

func (l *fsLoader) Load(ref types.ContentRef) ([]byte, error) {
	data, err := l.fs.ReadFile(ref.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", ref.Source).
			WithDetail("file", ref.Source).
			WithDetail("name", ref.Name)
	}
	return data, nil
}

// Checksum loads ref and returns its sha256 checksum
func Checksum(loader Loader, ref types.ContentRef) (string, error) {
	data, err := loader.Load(ref)
	if err != nil {
		return "", err
	}
	return hashutil.Checksum(data), nil
}
