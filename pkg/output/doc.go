// Package output renders resolved mappings for humans and machines.
//
// Formats:
//
//   - term: aligned, coloured listing (lipgloss)
//   - text: the same listing without styling
//   - json, yaml, toml: the Report structure, for scripts and installers
//
// FormatAuto picks term when stdout is a colour-capable terminal and
// NO_COLOR is unset, text otherwise.
package output
