// Package search turns a search word into a URL and opens it.
//
// The search package provides:
// - Provider lookup by name or alias
// - URL template rendering with percent-encoding of the word
// - Browser selection across provider, config and OS defaults
// - Launching the selected browser
package search
