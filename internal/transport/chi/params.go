package chi

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/prodex/internal/domain"
	"github.com/kailas-cloud/prodex/internal/domain/search/filter"
)

// SearchParams are the query parameters of GET /api/search.
type SearchParams struct {
	Q         *string  `form:"q" json:"q,omitempty"`
	Category  *string  `form:"category" json:"category,omitempty"`
	MaxPrice  *float64 `form:"max_price" json:"max_price,omitempty"`
	MinRating *float64 `form:"min_rating" json:"min_rating,omitempty"`
}

// Filter converts the bound parameters to a domain filter.
func (p *SearchParams) Filter() filter.Filter {
	var category string
	if p.Category != nil {
		category = *p.Category
	}
	return filter.New(category, p.MaxPrice, p.MinRating)
}

// Query returns the raw query text, empty when absent.
func (p *SearchParams) Query() string {
	if p.Q == nil {
		return ""
	}
	return *p.Q
}

// RecommendParams are the query parameters of GET /api/recommend/{id}.
type RecommendParams struct {
	Count *int `form:"count" json:"count,omitempty"`
}

// CountOrZero returns the requested count, 0 when absent.
func (p *RecommendParams) CountOrZero() int {
	if p.Count == nil {
		return 0
	}
	return *p.Count
}

// bindSearchParams binds /api/search parameters. A malformed number yields
// a domain.InvalidFilterError naming the parameter.
func bindSearchParams(r *http.Request) (SearchParams, error) {
	values := presentValues(r.URL.Query())

	var p SearchParams
	if err := runtime.BindQueryParameter("form", true, false, "q", values, &p.Q); err != nil {
		return p, fmt.Errorf("%w: invalid parameter q", errBadRequest)
	}
	if err := runtime.BindQueryParameter("form", true, false, "category", values, &p.Category); err != nil {
		return p, fmt.Errorf("%w: invalid parameter category", errBadRequest)
	}
	if err := runtime.BindQueryParameter("form", true, false, "max_price", values, &p.MaxPrice); err != nil {
		return p, domain.NewInvalidFilter("max_price", values.Get("max_price"))
	}
	if err := runtime.BindQueryParameter("form", true, false, "min_rating", values, &p.MinRating); err != nil {
		return p, domain.NewInvalidFilter("min_rating", values.Get("min_rating"))
	}
	return p, nil
}

func bindRecommendParams(r *http.Request) (RecommendParams, error) {
	values := presentValues(r.URL.Query())

	var p RecommendParams
	if err := runtime.BindQueryParameter("form", true, false, "count", values, &p.Count); err != nil {
		return p, fmt.Errorf("%w: count must be an integer", errBadRequest)
	}
	return p, nil
}

// bindProductID binds the {id} path segment.
func bindProductID(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, fmt.Errorf("%w: product id must be an integer", errBadRequest)
	}
	return id, nil
}

// presentValues drops empty values: "?max_price=" means the filter is absent.
func presentValues(in url.Values) url.Values {
	out := make(url.Values, len(in))
	for k, vs := range in {
		for _, v := range vs {
			if v != "" {
				out[k] = append(out[k], v)
			}
		}
	}
	return out
}
