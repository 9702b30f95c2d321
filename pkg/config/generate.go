package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/homefiles/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const starterHeader = `# homefiles configuration
#
# source_root  anchor for relative directories (defaults to this file's directory)
# layout       "plain" mirrors $HOME, "stow" drops the package directory name
# directories  directories to deploy, in order
# packages     stow only: restrict deployment to these package directories
# excluded     regular expressions matched against the end of each file name

`

// Generate renders opts as a commented TOML document
func Generate(opts Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(starterHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(opts); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// WriteStarter writes a starter configuration to path. An existing file is
// only replaced when force is set.
func WriteStarter(path string, opts Options, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrConfigInvalid, "config file %s already exists (use --force to overwrite)", path).
			WithDetail("path", path)
	}

	data, err := Generate(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot create directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot write config file %s", path)
	}
	return nil
}
