package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/homefiles/pkg/errors"
	"github.com/arthur-debert/homefiles/pkg/exclude"
	"github.com/arthur-debert/homefiles/pkg/layout"
	"github.com/arthur-debert/homefiles/pkg/logging"
	"github.com/arthur-debert/homefiles/pkg/paths"
	"github.com/arthur-debert/homefiles/pkg/types"
)

// Options is the raw, unvalidated configuration
type Options struct {
	// SourceRoot anchors relative directory references
	SourceRoot string `koanf:"source_root" toml:"source_root,omitempty" yaml:"source_root,omitempty"`

	// Layout is "plain" or "stow"; empty means plain
	Layout string `koanf:"layout" toml:"layout" yaml:"layout"`

	// Directories are absolute or relative directory references, in output order
	Directories []string `koanf:"directories" toml:"directories" yaml:"directories"`

	// Packages restricts stow enumeration to these subdirectories
	Packages []string `koanf:"packages" toml:"packages,omitempty" yaml:"packages,omitempty"`

	// Excluded holds regular expression fragments matched against basenames.
	// nil means the default set; an empty slice excludes nothing.
	Excluded []string `koanf:"excluded" toml:"excluded" yaml:"excluded"`
}

// Default returns Options holding the built-in defaults
func Default() Options {
	return Options{
		Layout:      types.LayoutPlain.String(),
		Directories: []string{},
		Excluded:    exclude.DefaultPatterns(),
	}
}

// Configuration is a validated, immutable configuration
type Configuration struct {
	sourceRoot  string
	layout      types.Layout
	directories []string
	packages    []string
	excluded    []string

	matcher  *exclude.Matcher
	stripper layout.Stripper
}

// New validates opts and builds a Configuration. All failures are
// ConfigurationErrors.
func New(opts Options) (*Configuration, error) {
	l := types.LayoutPlain
	if strings.TrimSpace(opts.Layout) != "" {
		parsed, err := types.ParseLayout(opts.Layout)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrLayoutInvalid, "invalid layout").
				WithDetail("layout", opts.Layout)
		}
		l = parsed
	}

	stripper, err := layout.For(l)
	if err != nil {
		return nil, err
	}

	root, err := paths.ExpandHome(opts.SourceRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "cannot expand source root").
			WithDetail("source_root", opts.SourceRoot)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "cannot make source root absolute").
			WithDetail("source_root", opts.SourceRoot)
	}

	for i, pkg := range opts.Packages {
		if err := validatePackage(pkg); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid package name %q", pkg).
				WithDetail("package", pkg).
				WithDetail("index", i)
		}
	}

	excluded := opts.Excluded
	if excluded == nil {
		excluded = exclude.DefaultPatterns()
	}
	matcher, err := exclude.New(excluded)
	if err != nil {
		return nil, err
	}

	if l != types.LayoutStow && len(opts.Packages) > 0 {
		logger := logging.GetLogger("config")
		logger.Debug().
			Strs("packages", opts.Packages).
			Str("layout", l.String()).
			Msg("Packages are only used by the stow layout, ignoring")
	}

	return &Configuration{
		sourceRoot:  root,
		layout:      l,
		directories: copyStrings(opts.Directories),
		packages:    copyStrings(opts.Packages),
		excluded:    copyStrings(excluded),
		matcher:     matcher,
		stripper:    stripper,
	}, nil
}

func validatePackage(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrConfigInvalid, "package name is empty")
	case name == "." || name == "..":
		return errors.New(errors.ErrConfigInvalid, "package name must name a subdirectory")
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return errors.New(errors.ErrConfigInvalid, "package name must be a single path segment")
	}
	return nil
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

// SourceRoot returns the absolute anchor for relative directories
func (c *Configuration) SourceRoot() string { return c.sourceRoot }

// Layout returns the configured layout
func (c *Configuration) Layout() types.Layout { return c.layout }

// Directories returns a copy of the configured directory references
func (c *Configuration) Directories() []string { return copyStrings(c.directories) }

// Packages returns a copy of the configured packages, whatever the layout
func (c *Configuration) Packages() []string { return copyStrings(c.packages) }

// Excluded returns a copy of the effective exclusion patterns
func (c *Configuration) Excluded() []string { return copyStrings(c.excluded) }

// EnumerationPackages returns the packages enumeration is restricted to:
// the configured packages for the stow layout, nil otherwise
func (c *Configuration) EnumerationPackages() []string {
	if c.layout != types.LayoutStow {
		return nil
	}
	return copyStrings(c.packages)
}

// Matcher returns the compiled exclusion matcher
func (c *Configuration) Matcher() *exclude.Matcher { return c.matcher }

// Stripper returns the layout stripper selected at construction time
func (c *Configuration) Stripper() layout.Stripper { return c.stripper }

// Options returns the configuration as Options, suitable for serialization
func (c *Configuration) Options() Options {
	return Options{
		SourceRoot:  c.sourceRoot,
		Layout:      c.layout.String(),
		Directories: c.Directories(),
		Packages:    c.Packages(),
		Excluded:    c.Excluded(),
	}
}
