package types

import (
	"fmt"
	"strings"
)

// Layout is the convention governing how a source directory maps onto the
// home directory
type Layout int

const (
	// LayoutPlain mirrors the directory directly under $HOME
	LayoutPlain Layout = iota
	// LayoutStow treats each first-level subdirectory as a GNU Stow package
	// whose name is dropped from the destination
	LayoutStow
)

var layoutNames = map[Layout]string{
	LayoutPlain: "plain",
	LayoutStow:  "stow",
}

// String returns the configuration name of the layout
func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Valid reports whether l is one of the recognized layouts
func (l Layout) Valid() bool {
	_, ok := layoutNames[l]
	return ok
}

// ParseLayout converts a configuration value into a Layout.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseLayout(s string) (Layout, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for l, n := range layoutNames {
		if n == name {
			return l, nil
		}
	}
	return LayoutPlain, fmt.Errorf("unknown layout %q (expected one of: %s)", s, strings.Join(LayoutNames(), ", "))
}

// LayoutNames lists the recognized layout names in declaration order
func LayoutNames() []string {
	return []string{LayoutPlain.String(), LayoutStow.String()}
}

// MarshalText implements encoding.TextMarshaler
func (l Layout) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid layout %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Layout) UnmarshalText(text []byte) error {
	parsed, err := ParseLayout(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
