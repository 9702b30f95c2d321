// Package testutil provides utilities for testing homefiles components.
//
// Key components:
//   - TestEnvironment: source root plus filesystem, in memory or in a temp dir
//   - MemoryFS: in-memory implementation of types.FS for fast, isolated tests
//   - FileTree: declarative directory layout written through either backend
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when real symlink or permission
//     semantics matter
//   - All test data should be defined inline, not in external files
package testutil
