// Package filesystem provides filesystem implementations for homefiles.
//
// This package contains the OS-backed implementation of the read-only
// types.FS interface used during resolution. Test filesystems live in
// pkg/testutil.
package filesystem
