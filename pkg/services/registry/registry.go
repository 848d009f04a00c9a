// Package registry answers which views a product group or view id governs.
package registry

import (
	"slices"

	"github.com/de-tools/report-views/pkg/models/domain"
)

// Registry is the read-only product configuration lookup used for cascading
// query resets.
type Registry interface {
	// ViewsByGroup returns the view ids owned by a product group, in
	// configuration order.
	ViewsByGroup(group string) []string
	// ViewsByID returns the configured view ids sharing viewID as key.
	ViewsByID(viewID string) []string
	// Products returns every configured product.
	Products() []domain.ProductConfig
}

type staticRegistry struct {
	products []domain.ProductConfig
	byGroup  map[string][]string
	byView   map[string][]string
}

// New builds a Registry from products. Order is preserved and repeated view ids
// within a group are listed once.
func New(products []domain.ProductConfig) Registry {
	r := &staticRegistry{
		products: slices.Clone(products),
		byGroup:  make(map[string][]string),
		byView:   make(map[string][]string),
	}

	for _, p := range products {
		if p.ViewID == "" {
			continue
		}
		if p.ProductGroup != "" && !slices.Contains(r.byGroup[p.ProductGroup], p.ViewID) {
			r.byGroup[p.ProductGroup] = append(r.byGroup[p.ProductGroup], p.ViewID)
		}
		if !slices.Contains(r.byView[p.ViewID], p.ViewID) {
			r.byView[p.ViewID] = append(r.byView[p.ViewID], p.ViewID)
		}
	}

	return r
}

func (r *staticRegistry) ViewsByGroup(group string) []string {
	return slices.Clone(r.byGroup[group])
}

func (r *staticRegistry) ViewsByID(viewID string) []string {
	return slices.Clone(r.byView[viewID])
}

func (r *staticRegistry) Products() []domain.ProductConfig {
	return slices.Clone(r.products)
}
