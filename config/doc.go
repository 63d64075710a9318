// Package config defines the search provider configuration and its YAML file.
//
// The config package provides:
// - The Config, Provider and Browser model
// - Bootstrap of ~/.config/search/config.yaml with built-in providers
// - Loading and saving the YAML file
// - JSON Schema generation and validation of a config document
package config
