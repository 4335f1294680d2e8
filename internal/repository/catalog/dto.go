package catalog

import (
	"fmt"

	"github.com/kailas-cloud/prodex/internal/domain"
	"github.com/kailas-cloud/prodex/internal/domain/product"
)

// fileDoc is the on-disk catalog layout.
type fileDoc struct {
	Products []productRow `yaml:"products"`
}

// productRow is the YAML representation of a product.
// Pointers distinguish a missing field from a zero value.
type productRow struct {
	ID          *int64   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Price       *float64 `yaml:"price"`
	Rating      *float64 `yaml:"rating"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
}

// productFromRow validates a row and hydrates a domain Product.
func productFromRow(i int, r *productRow) (product.Product, error) {
	if r.ID == nil {
		return product.Product{}, fmt.Errorf("%w: entry %d: id is required", domain.ErrInvalidProduct, i)
	}
	if r.Price == nil {
		return product.Product{}, fmt.Errorf("%w: product %d: price is required", domain.ErrInvalidProduct, *r.ID)
	}
	var rating float64
	if r.Rating != nil {
		rating = *r.Rating
	}

	p, err := product.New(*r.ID, r.Name, r.Category, *r.Price, rating, r.Description, r.Tags, r.Image)
	if err != nil {
		return product.Product{}, fmt.Errorf("%w: %w", domain.ErrInvalidProduct, err)
	}
	return p, nil
}
