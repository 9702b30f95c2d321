// Package config handles configuration management for homefiles.
//
// A Configuration is built once from Options and is read-only afterwards.
// Building validates the layout, the package names and the exclusion
// patterns, so every ConfigurationError surfaces before resolution starts.
//
// Options can be loaded from several layered sources with koanf:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. a TOML or YAML configuration file
//  3. HOMEFILES_* environment variables
//  4. explicit overrides (command-line flags)
//
// A minimal configuration file:
//
//	source_root = "~/dotfiles"   # defaults to the file's directory
//	layout = "stow"
//	directories = ["stow"]
//	packages = ["git", "nvim"]
package config
