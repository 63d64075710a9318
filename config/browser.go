package config

import (
	"strings"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// BrowserKind tells which layer decides the browser for a provider
type BrowserKind int

const (
	// BrowserConfigDefault defers to Config.Default.Browser, falling back to the OS opener.
	BrowserConfigDefault BrowserKind = iota
	// BrowserSystem uses the OS default URL opener.
	BrowserSystem
	// BrowserPath uses the browser named by Browser.Path.
	BrowserPath
)

// SystemKeyword is the YAML value selecting the OS default opener.
const SystemKeyword = "system"

// Browser is the browser setting of a provider.
// The zero value defers to the config-level default.
type Browser struct {
	Kind BrowserKind
	// Path is set only when Kind is BrowserPath
	Path string
}

// SystemBrowser returns a setting that uses the OS default opener
func SystemBrowser() Browser {
	return Browser{Kind: BrowserSystem}
}

// BrowserAt returns a setting that uses the browser at path
func BrowserAt(path string) Browser {
	return Browser{Kind: BrowserPath, Path: path}
}

// ParseBrowser converts the YAML representation into a Browser.
func ParseBrowser(s string) Browser {
	switch s = strings.TrimSpace(s); s {
	case "":
		return Browser{}
	case SystemKeyword:
		return SystemBrowser()
	default:
		return BrowserAt(s)
	}
}

// IsZero reports whether the setting defers to the config-level default.
// yaml.v3 uses it to omit the field.
func (b Browser) IsZero() bool {
	return b.Kind == BrowserConfigDefault
}

func (b Browser) String() string {
	switch b.Kind {
	case BrowserSystem:
		return SystemKeyword
	case BrowserPath:
		return b.Path
	default:
		return ""
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Browser) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*b = ParseBrowser(s)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Browser) MarshalYAML() (any, error) {
	if b.IsZero() {
		return nil, nil
	}
	return b.String(), nil
}

// JSONSchema describes the YAML representation of Browser.
func (Browser) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "Browser",
		Description: `Browser used to open URLs of this provider. Omit it to use default.browser; "system" uses the OS default opener; any other value is a browser name or path.`,
		Examples:    []any{SystemKeyword, "firefox", "/usr/bin/chromium"},
	}
}
