// Package types defines the core types and interfaces used throughout homefiles.
// This includes the Layout enum, the MappingEntry produced by resolution and
// the read-only FS interface the resolver enumerates through.
package types
