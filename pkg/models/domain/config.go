package domain

import "fmt"

// ProductConfig is one entry of the product configuration registry. A product
// belongs to exactly one product group and renders through exactly one view.
type ProductConfig struct {
	ProductID    string
	ProductGroup string
	ViewID       string
}

func (c ProductConfig) String() string {
	return fmt.Sprintf("%s:%s:%s", c.ProductGroup, c.ViewID, c.ProductID)
}
