// Package i18n resolves display labels from a locale catalog.
package i18n

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ToolbarLabel is the catalog section holding toolbar strings.
	ToolbarLabel = "toolbar.label"
	// ContextRangedMonthly selects month picker titles.
	ContextRangedMonthly = "granularityRangedMonthly"
	// ContextGranularity selects granularity names.
	ContextGranularity = "granularity"
)

//go:embed locales/en.yaml
var defaultLocale []byte

// Translator renders a label for key narrowed by context. It always returns a
// string.
type Translator interface {
	Label(key string, context ...string) string
}

// Catalog is a Translator backed by a nested locale document.
type Catalog struct {
	v *viper.Viper
}

// NewCatalog reads a locale document of the given format ("yaml", "json", ...).
func NewCatalog(r io.Reader, format string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType(format)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("failed to read locale: %w", err)
	}
	return &Catalog{v: v}, nil
}

// LoadCatalog reads a locale file; the format follows the file extension.
func LoadCatalog(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", path, err)
	}
	return &Catalog{v: v}, nil
}

// Default returns the built-in English catalog.
func Default() *Catalog {
	c, err := NewCatalog(bytes.NewReader(defaultLocale), "yaml")
	if err != nil {
		return &Catalog{v: viper.New()}
	}
	return c
}

// Label looks up key.context[0].context[1]... and falls back to the last
// context value, or the key itself when there is no context.
func (c *Catalog) Label(key string, context ...string) string {
	path := strings.Join(append([]string{key}, context...), ".")
	if c.v.IsSet(path) {
		if s := c.v.GetString(path); s != "" {
			return s
		}
	}

	if len(context) == 0 {
		return key
	}
	return context[len(context)-1]
}
