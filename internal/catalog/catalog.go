// Package catalog holds the static reference dataset of known vending
// machine products. The catalog is loaded once at process start and never
// mutated, so it is safe to share across concurrent requests without
// locking.
package catalog

import (
	"sort"

	"github.com/snackscan/backend/internal/domain"
)

// Catalog is the read-only product reference dataset.
type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// New builds the catalog from the built-in product dataset.
func New() (*Catalog, error) {
	if len(vendingProducts) == 0 {
		return nil, domain.ErrCatalogUnavailable
	}

	byID := make(map[string]domain.Product, len(vendingProducts))
	for _, p := range vendingProducts {
		if p.ID == "" || p.Name == "" || p.Popularity < 0 || p.Popularity > 100 {
			return nil, domain.ErrCatalogUnavailable
		}
		if _, dup := byID[p.ID]; dup {
			return nil, domain.ErrCatalogUnavailable
		}
		byID[p.ID] = p
	}

	return &Catalog{products: vendingProducts, byID: byID}, nil
}

// Products returns all products. The returned slice is shared reference
// data and must not be modified.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// ByID looks up a product by its identity.
func (c *Catalog) ByID(id string) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByPopularity returns a fresh slice of all products sorted by descending
// popularity, name as tiebreaker.
func (c *Catalog) ByPopularity() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Popularity != out[j].Popularity {
			return out[i].Popularity > out[j].Popularity
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
