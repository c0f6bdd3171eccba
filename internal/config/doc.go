// Package config loads and merges the application configuration.
//
// Values come from three sources, merged in priority order: environment
// variables, command-line flags, and an optional JSON file. The merged
// result is validated before the application starts.
package config
