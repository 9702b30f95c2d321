// Package sanitize derives store-safe identifiers from destination paths.
package sanitize

import "strings"

// Prefix namespaces every derived name
const Prefix = "homefiles-"

// Placeholder replaces every character that may not appear in a name
const Placeholder = '-'

// Name derives a store-safe identifier for a destination path. Every rune
// that is not graphic ASCII, and every '.', '/' and ' ', becomes '-'.
// Name is total and deterministic; distinct inputs may collide.
func Name(dest string) string {
	var b strings.Builder
	b.Grow(len(Prefix) + len(dest))
	b.WriteString(Prefix)
	for _, r := range dest {
		if allowed(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

func allowed(r rune) bool {
	if r < '!' || r > '~' {
		return false
	}
	switch r {
	case '.', '/', ' ':
		return false
	}
	return true
}
