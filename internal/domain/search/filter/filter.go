package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kailas-cloud/prodex/internal/domain/product"
)

// Filter is the set of hard attribute filters applied after ranking.
// All conditions are optional and combined with AND. The zero value matches everything.
type Filter struct {
	category string
	price    Range
	rating   Range
}

// New creates a Filter from boundary values.
// An empty category and nil bounds mean "absent". A NaN bound compares false
// against every price and is treated as absent; negative and infinite bounds
// are kept, so max_price=-1 matches nothing.
func New(category string, maxPrice, minRating *float64) Filter {
	f := Filter{category: strings.TrimSpace(category)}
	if v, ok := usable(maxPrice); ok {
		f.price, _ = NewRange(nil, nil, nil, &v)
	}
	if v, ok := usable(minRating); ok {
		f.rating, _ = NewRange(nil, &v, nil, nil)
	}
	return f
}

func usable(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	v := *p
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Category returns the category condition ("" when absent).
func (f Filter) Category() string { return f.category }

// MaxPrice returns the inclusive price ceiling (nil when absent).
func (f Filter) MaxPrice() *float64 { return f.price.LTE() }

// MinRating returns the inclusive rating floor (nil when absent).
func (f Filter) MinRating() *float64 { return f.rating.GTE() }

// IsEmpty reports whether the filter has no conditions.
func (f Filter) IsEmpty() bool {
	return f.category == "" && f.price.IsEmpty() && f.rating.IsEmpty()
}

// Matches reports whether p satisfies every condition.
func (f Filter) Matches(p *product.Product) bool {
	if f.category != "" && !p.InCategory(f.category) {
		return false
	}
	if !f.price.Contains(p.Price()) {
		return false
	}
	return f.rating.Contains(p.Rating())
}

// Key is a canonical string form, stable for equal filters.
func (f Filter) Key() string {
	var b strings.Builder
	b.WriteString("c=")
	b.WriteString(strings.ToLower(f.category))
	b.WriteString(";p<=")
	b.WriteString(formatBound(f.price.LTE()))
	b.WriteString(";r>=")
	b.WriteString(formatBound(f.rating.GTE()))
	return b.String()
}

func formatBound(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// Range is a numeric range with gt/gte/lt/lte boundaries. The zero value is unbounded.
type Range struct {
	gt  *float64
	gte *float64
	lt  *float64
	lte *float64
}

// NewRange validates and creates a Range.
// At least one boundary required. gt/gte and lt/lte are mutually exclusive.
func NewRange(gt, gte, lt, lte *float64) (Range, error) {
	if gt == nil && gte == nil && lt == nil && lte == nil {
		return Range{}, fmt.Errorf("at least one range boundary is required")
	}
	if gt != nil && gte != nil {
		return Range{}, fmt.Errorf("cannot specify both gt and gte")
	}
	if lt != nil && lte != nil {
		return Range{}, fmt.Errorf("cannot specify both lt and lte")
	}
	return Range{gt: gt, gte: gte, lt: lt, lte: lte}, nil
}

// GT returns the lower exclusive bound.
func (r Range) GT() *float64 { return r.gt }

// GTE returns the lower inclusive bound.
func (r Range) GTE() *float64 { return r.gte }

// LT returns the upper exclusive bound.
func (r Range) LT() *float64 { return r.lt }

// LTE returns the upper inclusive bound.
func (r Range) LTE() *float64 { return r.lte }

// IsEmpty reports whether the range has no boundaries.
func (r Range) IsEmpty() bool {
	return r.gt == nil && r.gte == nil && r.lt == nil && r.lte == nil
}

// Contains reports whether v lies inside every boundary.
func (r Range) Contains(v float64) bool {
	switch {
	case r.gt != nil && v <= *r.gt:
		return false
	case r.gte != nil && v < *r.gte:
		return false
	case r.lt != nil && v >= *r.lt:
		return false
	case r.lte != nil && v > *r.lte:
		return false
	}
	return true
}
