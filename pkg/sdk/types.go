package prodex

import (
	"time"

	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/filter"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
)

// Product is a catalog entry.
type Product struct {
	ID          int64
	Name        string
	Category    string
	Price       float64
	Rating      float64
	Description string
	Tags        []string
	Image       string
}

// Filter narrows search results after ranking. Zero values mean absent:
// an empty Category and nil bounds match everything.
type Filter struct {
	Category  string   // case-insensitive exact match
	MaxPrice  *float64 // price <= MaxPrice
	MinRating *float64 // rating >= MinRating
}

// SearchResult is a single search hit. Score is set only when Scored,
// i.e. for a non-empty query.
type SearchResult struct {
	Product Product
	Score   float64
	Scored  bool
}

// ProductDetail is a product with its recommendations.
type ProductDetail struct {
	Product         Product
	Recommendations []Product
}

// CatalogInfo describes the active catalog.
type CatalogInfo struct {
	Products    int
	Terms       int
	Fingerprint string
	LoadedAt    time.Time
}

// Float returns a pointer to v, for Filter bounds.
func Float(v float64) *float64 { return &v }

func (f Filter) toDomain() filter.Filter {
	return filter.New(f.Category, f.MaxPrice, f.MinRating)
}

func (p *Product) toDomain() (product.Product, error) {
	return product.New(p.ID, p.Name, p.Category, p.Price, p.Rating, p.Description, p.Tags, p.Image)
}

func productFromDomain(p *product.Product) Product {
	return Product{
		ID:          p.ID(),
		Name:        p.Name(),
		Category:    p.Category(),
		Price:       p.Price(),
		Rating:      p.Rating(),
		Description: p.Description(),
		Tags:        p.Tags(),
		Image:       p.Image(),
	}
}

func productsFromDomain(ps []product.Product) []Product {
	out := make([]Product, len(ps))
	for i := range ps {
		out[i] = productFromDomain(&ps[i])
	}
	return out
}

func resultsFromDomain(rs []result.Result) []SearchResult {
	out := make([]SearchResult, len(rs))
	for i := range rs {
		p := rs[i].Product()
		out[i] = SearchResult{
			Product: productFromDomain(&p),
			Score:   rs[i].Score(),
			Scored:  rs[i].Scored(),
		}
	}
	return out
}
