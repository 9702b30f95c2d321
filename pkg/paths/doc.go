// Package paths provides path handling for homefiles.
//
// It resolves configured directory references against the source root and
// locates the configuration file following the XDG Base Directory
// specification:
//
//   - Config: $XDG_CONFIG_HOME/homefiles/config.toml (or config.yaml)
//
// # Environment Variables
//
//   - HOMEFILES_CONFIG: explicit configuration file path
//   - HOME: used for ~ expansion
//
// # Usage
//
//	dir := paths.Resolve("stow", "/home/user/dotfiles") // /home/user/dotfiles/stow
//	dir = paths.Resolve("/etc/skel/dotfiles", root)     // unchanged
package paths
