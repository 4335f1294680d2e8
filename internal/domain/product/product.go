package product

import (
	"fmt"
	"math"
	"strings"
)

// Product attribute limits.
const (
	MaxRating     = 5.0
	MaxNameLength = 256
	MaxTags       = 64
)

// Product is a catalog entry (immutable value object).
type Product struct {
	id          int64
	name        string
	category    string
	price       float64
	rating      float64
	description string
	tags        []string
	image       string
}

// New validates and creates a Product.
// Name is required, price must be a non-negative number, rating must lie in [0, 5].
func New(
	id int64, name, category string, price, rating float64,
	description string, tags []string, image string,
) (Product, error) {
	if strings.TrimSpace(name) == "" {
		return Product{}, fmt.Errorf("product %d: name is required", id)
	}
	if len(name) > MaxNameLength {
		return Product{}, fmt.Errorf("product %d: name too long (max %d)", id, MaxNameLength)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return Product{}, fmt.Errorf("product %d: price must be a non-negative number", id)
	}
	if math.IsNaN(rating) || rating < 0 || rating > MaxRating {
		return Product{}, fmt.Errorf("product %d: rating must be between 0 and %g", id, MaxRating)
	}
	if len(tags) > MaxTags {
		return Product{}, fmt.Errorf("product %d: too many tags (max %d)", id, MaxTags)
	}

	return Product{
		id:          id,
		name:        name,
		category:    category,
		price:       price,
		rating:      rating,
		description: description,
		tags:        cloneTags(tags),
		image:       image,
	}, nil
}

// Reconstruct creates a Product without validation (storage hydration).
func Reconstruct(
	id int64, name, category string, price, rating float64,
	description string, tags []string, image string,
) Product {
	return Product{
		id: id, name: name, category: category, price: price, rating: rating,
		description: description, tags: tags, image: image,
	}
}

// ID returns the product identifier.
func (p *Product) ID() int64 { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Category returns the category label as stored.
func (p *Product) Category() string { return p.category }

// Price returns the product price.
func (p *Product) Price() float64 { return p.price }

// Rating returns the average rating in [0, 5].
func (p *Product) Rating() float64 { return p.rating }

// Description returns the free-text description.
func (p *Product) Description() string { return p.description }

// Tags returns a copy of the tags in their original order.
func (p *Product) Tags() []string { return cloneTags(p.tags) }

// Image returns the image reference (may be empty).
func (p *Product) Image() string { return p.image }

// InCategory reports whether the product category equals c, ignoring case.
func (p *Product) InCategory(c string) bool {
	return strings.EqualFold(p.category, c)
}

// DocumentText is the text the index is built from:
// name, description, category and the space-joined tags.
func (p *Product) DocumentText() string {
	return p.name + " " + p.description + " " + p.category + " " + strings.Join(p.tags, " ")
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
