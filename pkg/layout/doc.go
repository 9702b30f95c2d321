// Package layout converts absolute source file paths into destination paths
// relative to the home directory.
//
// Two layouts are supported:
//
//   - plain: the directory mirrors $HOME. <dir>/.config/git/config becomes
//     .config/git/config.
//   - stow: the directory holds GNU Stow packages. The first segment below the
//     directory is the package name and is dropped, so <dir>/git/.gitconfig
//     becomes .gitconfig.
//
// Strippers are selected once, when a configuration is built, so the
// assembler never branches on the layout itself.
package layout
