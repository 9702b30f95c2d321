package mapping

import (
	"github.com/arthur-debert/homefiles/pkg/config"
	"github.com/arthur-debert/homefiles/pkg/enumerate"
	"github.com/arthur-debert/homefiles/pkg/errors"
	"github.com/arthur-debert/homefiles/pkg/logging"
	"github.com/arthur-debert/homefiles/pkg/paths"
	"github.com/arthur-debert/homefiles/pkg/sanitize"
	"github.com/arthur-debert/homefiles/pkg/types"
	"github.com/rs/zerolog"
)

// Resolver produces mapping entries from configurations. It holds no state
// between calls and may be shared across goroutines as long as the
// underlying FS may.
type Resolver struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewResolver creates a Resolver reading through fsys
func NewResolver(fsys types.FS) *Resolver {
	return &Resolver{
		fs:     fsys,
		logger: logging.GetLogger("mapping"),
	}
}

// Assemble is a convenience wrapper around NewResolver(fsys).Resolve(cfg)
func Assemble(cfg *config.Configuration, fsys types.FS) ([]types.MappingEntry, error) {
	return NewResolver(fsys).Resolve(cfg)
}

// Resolve returns one entry per non-excluded file, in directory order and
// then enumeration order. The first failure aborts the whole resolution.
func (r *Resolver) Resolve(cfg *config.Configuration) ([]types.MappingEntry, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrConfigInvalid, "no configuration to resolve")
	}
	defer logging.LogOperationStart(r.logger, "resolve")()

	enumerator := enumerate.New(r.fs, cfg.Matcher())
	stripper := cfg.Stripper()
	packages := cfg.EnumerationPackages()

	entries := []types.MappingEntry{}
	for _, ref := range cfg.Directories() {
		dir := paths.Resolve(ref, cfg.SourceRoot())

		files, err := enumerator.Enumerate(dir, packages)
		if err != nil {
			return nil, withReference(err, ref)
		}

		for _, file := range files {
			dest, err := stripper.Strip(file, dir)
			if err != nil {
				return nil, withReference(err, ref)
			}
			entries = append(entries, types.MappingEntry{
				Destination: dest,
				Content: types.ContentRef{
					Source: file,
					Name:   sanitize.Name(dest),
				},
			})
		}

		r.logger.Debug().
			Str("directory", dir).
			Str("layout", stripper.Layout().String()).
			Int("files", len(files)).
			Msg("Resolved directory")
	}

	r.logger.Info().
		Int("directories", len(cfg.Directories())).
		Int("entries", len(entries)).
		Msg("Resolved mappings")

	return entries, nil
}

// withReference records the configured reference that led to err
func withReference(err error, ref string) error {
	if hfErr, ok := err.(*errors.HomefilesError); ok {
		return hfErr.WithDetail("reference", ref)
	}
	return errors.Wrapf(err, errors.ErrInternal, "resolving %s", ref).WithDetail("reference", ref)
}

// Duplicate is a destination produced by more than one source
type Duplicate struct {
	Destination string
	Sources     []string
}

// Duplicates lists destinations that occur more than once, ordered by first
// occurrence. Sources keep entry order.
func Duplicates(entries []types.MappingEntry) []Duplicate {
	index := map[string]int{}
	var all []Duplicate
	for _, e := range entries {
		i, seen := index[e.Destination]
		if !seen {
			i = len(all)
			index[e.Destination] = i
			all = append(all, Duplicate{Destination: e.Destination})
		}
		all[i].Sources = append(all[i].Sources, e.Content.Source)
	}

	var dups []Duplicate
	for _, d := range all {
		if len(d.Sources) > 1 {
			dups = append(dups, d)
		}
	}
	return dups
}
