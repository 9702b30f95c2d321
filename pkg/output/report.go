package output

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/homefiles/pkg/types"
)

// Entry is one rendered mapping
type Entry struct {
	Destination string `json:"destination" yaml:"destination" toml:"destination"`
	Source      string `json:"source" yaml:"source" toml:"source"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	Checksum    string `json:"checksum,omitempty" yaml:"checksum,omitempty" toml:"checksum,omitempty"`
}

// Report is the serializable result of a resolution
type Report struct {
	SourceRoot string   `json:"source_root" yaml:"source_root" toml:"source_root"`
	Layout     string   `json:"layout" yaml:"layout" toml:"layout"`
	Duplicates []string `json:"duplicates,omitempty" yaml:"duplicates,omitempty" toml:"duplicates,omitempty"`
	Entries    []Entry  `json:"entries" yaml:"entries" toml:"entries"`
}

// NewReport converts mapping entries into a Report
func NewReport(sourceRoot string, layout types.Layout, entries []types.MappingEntry) Report {
	r := Report{
		SourceRoot: sourceRoot,
		Layout:     layout.String(),
		Entries:    make([]Entry, 0, len(entries)),
	}
	for _, e := range entries {
		r.Entries = append(r.Entries, Entry{
			Destination: e.Destination,
			Source:      e.Content.Source,
			Name:        e.Content.Name,
		})
	}
	return r
}

// displaySource shortens sources below the source root
func (r Report) displaySource(source string) string {
	if r.SourceRoot == "" {
		return source
	}
	rel, err := filepath.Rel(r.SourceRoot, source)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return source
	}
	return rel
}
