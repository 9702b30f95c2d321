package types

// ContentRef points at the source content of a mapping. The hosting system
// resolves it into a deployable artifact; homefiles never copies the bytes.
type ContentRef struct {
	// Source is the absolute path of the source file
	Source string `json:"source" yaml:"source" toml:"source"`

	// Name is the store-safe identifier derived from the destination path
	Name string `json:"name" yaml:"name" toml:"name"`
}

// MappingEntry maps a path relative to $HOME onto the content that should
// occupy it
type MappingEntry struct {
	// Destination is relative to the home directory and always uses "/"
	// separators. It never starts with "/" and never contains ".." segments.
	Destination string `json:"destination" yaml:"destination" toml:"destination"`

	// Content references the source file for this destination
	Content ContentRef `json:"content" yaml:"content" toml:"content"`
}
