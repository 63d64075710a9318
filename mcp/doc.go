// Package mcp implements the Model Context Protocol server for search.
//
// The mcp package provides:
// - An MCP server over stdio
// - Tools to render search URLs, list providers and open searches
package mcp
