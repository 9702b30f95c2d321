package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	herrors "github.com/arthur-debert/homefiles/pkg/errors"
	"github.com/arthur-debert/homefiles/pkg/logging"
	"github.com/arthur-debert/homefiles/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment variables that override file values
const EnvPrefix = "HOMEFILES_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// envKeys maps environment variable suffixes onto configuration keys
var envKeys = map[string]string{
	"SOURCE_ROOT": "source_root",
	"LAYOUT":      "layout",
	"DIRECTORIES": "directories",
	"PACKAGES":    "packages",
	"EXCLUDED":    "excluded",
}

// Load reads the configuration file at path and builds a Configuration
func Load(path string, overrides map[string]interface{}) (*Configuration, error) {
	opts, err := LoadOptions(path, overrides)
	if err != nil {
		return nil, err
	}
	return New(opts)
}

// LoadOptions layers defaults, the file at path, HOMEFILES_* environment
// variables and overrides, then unmarshals the result. A missing or
// relative source_root is anchored at the directory containing path.
func LoadOptions(path string, overrides map[string]interface{}) (Options, error) {
	logger := logging.GetLogger("config.loader")

	path, err := paths.ExpandHome(path)
	if err != nil {
		return Options{}, herrors.Wrap(err, herrors.ErrConfigLoad, "cannot expand config path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Options{}, herrors.Wrapf(err, herrors.ErrConfigLoad, "cannot resolve config path %s", path)
	}

	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Options{}, herrors.Wrap(err, herrors.ErrInternal, "failed to load defaults")
	}

	// 2. Config file
	if _, err := os.Stat(absPath); err != nil {
		return Options{}, herrors.Wrapf(err, herrors.ErrConfigLoad, "cannot read config file %s", absPath).
			WithDetail("path", absPath)
	}
	parser, err := parserFor(absPath)
	if err != nil {
		return Options{}, err
	}
	if err := k.Load(file.Provider(absPath), parser); err != nil {
		return Options{}, herrors.Wrapf(err, herrors.ErrConfigParse, "failed to parse config file %s", absPath).
			WithDetail("path", absPath)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.TrimPrefix(s, EnvPrefix)]
	}), nil); err != nil {
		return Options{}, herrors.Wrap(err, herrors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return Options{}, herrors.Wrap(err, herrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var opts Options
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &opts,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &opts, unmarshalConf); err != nil {
		return Options{}, herrors.Wrapf(err, herrors.ErrConfigParse, "invalid configuration in %s", absPath).
			WithDetail("path", absPath)
	}

	configDir := filepath.Dir(absPath)
	switch {
	case opts.SourceRoot == "":
		opts.SourceRoot = configDir
	case strings.HasPrefix(opts.SourceRoot, "~"):
		// expanded by New
	case !filepath.IsAbs(opts.SourceRoot):
		opts.SourceRoot = filepath.Join(configDir, opts.SourceRoot)
	}

	logger.Debug().
		Str("path", absPath).
		Str("sourceRoot", opts.SourceRoot).
		Str("layout", opts.Layout).
		Strs("directories", opts.Directories).
		Msg("Loaded configuration")

	return opts, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, herrors.Newf(herrors.ErrConfigLoad, "unsupported config file type %q (use .toml or .yaml)", filepath.Ext(path)).
			WithDetail("path", path)
	}
}
