package registry

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/de-tools/report-views/pkg/models/domain"
)

const (
	keyGroup = "group"
	keyView  = "view"
)

// Load parses a product configuration document. Each non-empty section is one
// product, named by its section:
//
//	[rhel-x86]
//	group = RHEL
//	view  = viewRHEL
//
// source is anything ini.Load accepts: a file path, []byte or io.Reader.
func Load(source interface{}) (Registry, error) {
	cfg, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("failed to load product configuration: %w", err)
	}

	var products []domain.ProductConfig
	for _, section := range cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}

		view := section.Key(keyView).String()
		if view == "" {
			return nil, fmt.Errorf("product %s has no %q key", section.Name(), keyView)
		}

		products = append(products, domain.ProductConfig{
			ProductID:    section.Name(),
			ProductGroup: section.Key(keyGroup).String(),
			ViewID:       view,
		})
	}

	return New(products), nil
}
