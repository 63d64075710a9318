// Package cli implements the command-line interface for search.
//
// The cli package provides:
// - Command-line argument parsing with cobra
// - The "search [provider] word" shorthand for the open command
// - Provider listing, config inspection and JSON Schema output
// - Shell completion scripts with dynamic provider names
// - An interactive provider picker
package cli
