// Package exclude compiles exclusion patterns into a single basename matcher.
//
// Patterns are regular expression fragments, not globs. Each pattern is
// implicitly anchored at the end of the name with an implicit leading
// wildcard, so a pattern p excludes every basename matching
//
//	^(?s:.*)(?:p)$
//
// All patterns are joined by alternation into one compiled expression. The
// default set excludes editor backups, swap files and git metadata:
//
//	.*~  .*\.swp  \.git  \.gitignore
package exclude
