// Package mapping assembles the ordered list of home directory mappings for
// a configuration.
//
// For every configured directory, in order, the assembler resolves the
// reference against the source root, enumerates its files (restricted to
// the configured packages under the stow layout), strips each path
// according to the layout and derives a store-safe content name:
//
//	stow/git/.gitconfig  ->  {Destination: ".gitconfig", Content: {Source: "/src/stow/git/.gitconfig", Name: "homefiles--gitconfig"}}
//
// Entries are never deduplicated. When two directories or packages produce
// the same destination both entries are returned; deciding which one wins
// is up to the installer consuming the list. Duplicates reports them.
package mapping
