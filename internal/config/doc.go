// Package config loads, merges, and validates the application configuration.
//
// Values are collected from three sources and merged in priority order
// (earlier sources win for non-zero fields): environment variables,
// command-line flags, and an optional JSON file whose path is itself taken
// from the first two sources. Hard defaults are applied last.
//
// The main entry point is [GetStructuredConfig].
package config
