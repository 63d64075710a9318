package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/morikuni/failure/v2"
)

// Version is written to newly created config files
const Version = "v1.0"

var validate = validator.New()

// Config is the content of config.yaml
type Config struct {
	Version   string         `yaml:"version" json:"version" jsonschema:"description=Config file format version"`
	Providers []Provider     `yaml:"providers" json:"providers" validate:"dive" jsonschema:"description=Search providers. The first one is used when no provider is given"`
	Default   *DefaultConfig `yaml:"default,omitempty" json:"default,omitempty" jsonschema:"description=Fallback settings shared by all providers"`
}

// Provider is a named search URL template
type Provider struct {
	// Name of the provider. Compared case-sensitively.
	Name string `yaml:"name" json:"name" validate:"required" jsonschema:"description=The name of the provider"`
	// Aliases are alternative names resolving to this provider
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty" jsonschema:"description=The name aliases"`
	// URL is a template; {{ word }} is replaced by the escaped search word
	URL string `yaml:"url" json:"url" validate:"required" jsonschema:"description=The URL of the provider. {{ word }} is replaced by the search word"`
	// Browser overrides which browser opens the URL
	Browser Browser `yaml:"browser,omitempty" json:"browser,omitempty,omitzero"`
}

// DefaultConfig holds settings used when a provider does not override them
type DefaultConfig struct {
	Browser string `yaml:"browser,omitempty" json:"browser,omitempty" jsonschema:"description=Browser used by providers without their own browser setting"`
}

// DefaultBrowser returns the config-level browser, if any.
func (c Config) DefaultBrowser() (string, bool) {
	if c.Default == nil || c.Default.Browser == "" {
		return "", false
	}
	return c.Default.Browser, true
}

// Default returns the config written on first run.
func Default() Config {
	return Config{
		Version: Version,
		Providers: []Provider{
			{
				Name:    "google",
				Aliases: []string{"g"},
				URL:     "https://google.com/search?q={{ word }}",
			},
			{
				Name: "bing",
				URL:  "https://www.bing.com/search?q={{ word }}",
			},
			{
				Name:    "duckduckgo",
				Aliases: []string{"d"},
				URL:     "https://duckduckgo.com/?q={{ word }}",
			},
		},
	}
}

// Validate checks the constraints a loaded config must satisfy
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return failure.Translate(err, ErrInvalid,
			failure.Message(fmt.Sprintf("Invalid config: %v", err)),
		)
	}
	return nil
}
