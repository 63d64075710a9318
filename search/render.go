package search

import (
	"fmt"
	"net/url"
	"strings"
	"text/template"
	"text/template/parse"
	"unicode/utf8"

	"github.com/masinc/search-cli/log"
	"github.com/morikuni/failure/v2"
	"golang.org/x/net/idna"
)

// placeholder is the value of {{ word }}. It prints percent-encoded and
// keeps the raw word so urlencode does not encode it twice.
type placeholder struct {
	raw string
}

func (p placeholder) String() string {
	return Escape(p.raw)
}

// Escape percent-encodes s for use in a URL query, spaces becoming %20.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// URLEncode percent-encodes every byte of s except ASCII letters, digits and "-_.~/".
func URLEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || strings.IndexByte("-_.~/", c) >= 0 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

// Render substitutes word into the URL template tmpl.
//
// The template recognizes:
//   - {{ word }}: the percent-encoded word
//   - {{ word | urlencode }}: the word encoded by URLEncode, "/" kept as is
//   - {{ raw }}: the word as given
//
// Any other action is rejected with ErrTemplateInvalid.
func Render(tmpl, word string) (string, error) {
	funcs := template.FuncMap{
		"word": func() placeholder {
			return placeholder{raw: word}
		},
		"raw": func() string {
			return word
		},
		"urlencode": func(v any) string {
			if p, ok := v.(placeholder); ok {
				return URLEncode(p.raw)
			}
			return URLEncode(fmt.Sprint(v))
		},
	}

	t, err := template.New("url").Funcs(funcs).Parse(tmpl)
	if err != nil {
		return "", failure.Translate(err, ErrTemplateInvalid,
			failure.Message(fmt.Sprintf("Invalid URL template: %v", err)),
			failure.Context{"template": tmpl},
		)
	}

	if t.Tree != nil {
		for _, n := range t.Tree.Root.Nodes {
			if !allowedNode(n) {
				return "", failure.New(ErrTemplateInvalid,
					failure.Message(fmt.Sprintf("Invalid URL template: unsupported expression %s", n)),
					failure.Context{"template": tmpl},
				)
			}
		}
	}

	var b strings.Builder
	if err := t.Execute(&b, nil); err != nil {
		return "", failure.Translate(err, ErrTemplateInvalid,
			failure.Message(fmt.Sprintf("Cannot render URL template: %v", err)),
			failure.Context{"template": tmpl},
		)
	}

	return asciiHost(b.String()), nil
}

// allowedNode reports whether n is plain text or a pipeline of the form
// "word" or "raw", optionally followed by "| urlencode".
func allowedNode(n parse.Node) bool {
	switch n := n.(type) {
	case *parse.TextNode:
		return true
	case *parse.ActionNode:
		if len(n.Pipe.Decl) > 0 || len(n.Pipe.Cmds) == 0 {
			return false
		}
		for i, c := range n.Pipe.Cmds {
			if len(c.Args) != 1 {
				return false
			}
			id, ok := c.Args[0].(*parse.IdentifierNode)
			if !ok {
				return false
			}
			switch {
			case i == 0 && (id.Ident == "word" || id.Ident == "raw"):
			case i > 0 && id.Ident == "urlencode":
			default:
				return false
			}
		}
		return true
	default:
		return false
	}
}

// asciiHost converts an internationalized host name in rawURL to punycode.
func asciiHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	host := u.Hostname()
	if isASCII(host) {
		return rawURL
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		log.Warn("Cannot convert host to ASCII", "host", host, "error", err)
		return rawURL
	}
	return strings.Replace(rawURL, host, ascii, 1)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
