package result

import "github.com/kailas-cloud/prodex/internal/domain/product"

// Result is a single ranked product.
type Result struct {
	product product.Product
	score   float64
	scored  bool
}

// New creates a scored result.
func New(p product.Product, score float64) Result {
	return Result{product: p, score: score, scored: true}
}

// Unscored creates a result for a product that was not ranked.
func Unscored(p product.Product) Result {
	return Result{product: p}
}

// Product returns the matched product.
func (r *Result) Product() product.Product { return r.product }

// ID returns the product identifier.
func (r *Result) ID() int64 { return r.product.ID() }

// Score returns the similarity score in [0, 1] (0 when unscored).
func (r *Result) Score() float64 { return r.score }

// Scored reports whether the result carries a similarity score.
func (r *Result) Scored() bool { return r.scored }

// Products strips scores from results, keeping order.
func Products(results []Result) []product.Product {
	out := make([]product.Product, len(results))
	for i := range results {
		out[i] = results[i].product
	}
	return out
}
