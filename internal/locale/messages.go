package locale

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var defaultMessages []byte

// Messages holds the labels of the pagination controls for one language.
type Messages struct {
	First    string `yaml:"first"`
	Previous string `yaml:"previous"`
	Next     string `yaml:"next"`
	Last     string `yaml:"last"`
	Page     string `yaml:"page"`
	Ellipsis string `yaml:"ellipsis"`
}

// PageLabel formats the label of page n, e.g. "Page 3".
func (m Messages) PageLabel(n int) string {
	if !strings.Contains(m.Page, "%d") {
		return fmt.Sprintf("%s %d", m.Page, n)
	}
	return fmt.Sprintf(m.Page, n)
}

// Catalog maps a language code to its messages.
type Catalog struct {
	messages map[string]Messages
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultMessages)
}

// ParseCatalog decodes a YAML catalog. The default language must be present.
func ParseCatalog(data []byte) (*Catalog, error) {
	var msgs map[string]Messages
	if err := yaml.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("parse messages YAML: %w", err)
	}

	if _, ok := msgs[DefaultLang]; !ok {
		return nil, fmt.Errorf("messages for default language %q are missing", DefaultLang)
	}

	for lang, m := range msgs {
		if m.Page == "" {
			return nil, fmt.Errorf("language %q has no page label", lang)
		}
	}

	return &Catalog{messages: msgs}, nil
}

// Lookup returns the messages for lang, falling back to DefaultLang.
func (c *Catalog) Lookup(lang string) Messages {
	if m, ok := c.messages[lang]; ok {
		return m
	}
	return c.messages[DefaultLang]
}
