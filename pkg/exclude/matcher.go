package exclude

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/homefiles/pkg/errors"
)

// Matcher tests basenames against a compiled set of exclusion patterns.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	patterns []string
	re       *regexp.Regexp // nil when there are no patterns
}

// DefaultPatterns returns a fresh copy of the default exclusion patterns
func DefaultPatterns() []string {
	return []string{`.*~`, `.*\.swp`, `\.git`, `\.gitignore`}
}

// New compiles patterns into a Matcher. An empty pattern list yields a
// matcher that excludes nothing. A malformed pattern fails with a
// PATTERN_INVALID error naming the offending pattern and its index.
func New(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: append([]string(nil), patterns...)}
	if len(patterns) == 0 {
		return m, nil
	}

	groups := make([]string, 0, len(patterns))
	for i, p := range patterns {
		group := "(?:" + p + ")"
		if _, err := regexp.Compile(group); err != nil {
			return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid exclusion pattern %q", p).
				WithDetail("pattern", p).
				WithDetail("index", i)
		}
		groups = append(groups, group)
	}

	// the prefix wildcard must also cross newlines in a name
	re, err := regexp.Compile("^(?s:.*)(?:" + strings.Join(groups, "|") + ")$")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPatternInvalid, "failed to combine exclusion patterns").
			WithDetail("patterns", m.patterns)
	}
	m.re = re
	return m, nil
}

// MustNew is like New but panics on error. Intended for tests and
// package-level defaults built from known-good patterns.
func MustNew(patterns []string) *Matcher {
	m, err := New(patterns)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether the basename is excluded
func (m *Matcher) Match(name string) bool {
	if m == nil || m.re == nil {
		return false
	}
	return m.re.MatchString(name)
}

// Patterns returns a copy of the patterns the matcher was built from
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}

// String returns the compiled expression, or an empty string when the
// matcher has no patterns
func (m *Matcher) String() string {
	if m == nil || m.re == nil {
		return ""
	}
	return m.re.String()
}
