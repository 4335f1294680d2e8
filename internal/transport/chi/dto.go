package chi

import (
	"time"

	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/prodex/internal/usecase/health"
)

// ErrorCode is the machine-readable error code of an ErrorResponse.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeInvalidFilter    ErrorCode = "invalid_filter"
	ErrorCodeInvalidQuery     ErrorCode = "invalid_query"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeProductNotFound  ErrorCode = "product_not_found"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeCatalogNotLoaded ErrorCode = "catalog_not_loaded"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the JSON body of every error.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ProductResponse is the wire form of a product.
type ProductResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	Rating          float64  `json:"rating"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	Image           string   `json:"image,omitempty"`
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
}

// SearchResponse is returned by GET /api/search.
type SearchResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
	Query string            `json:"query"`
}

// ProductListResponse is returned by the recommendation and listing endpoints.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ProductDetailResponse is returned by GET /api/products/{id}.
type ProductDetailResponse struct {
	ProductResponse
	Recommendations []ProductResponse `json:"recommendations"`
}

// HealthCatalog describes the active catalog in a HealthResponse.
type HealthCatalog struct {
	Products    int        `json:"products"`
	Terms       int        `json:"terms"`
	Fingerprint string     `json:"fingerprint,omitempty"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  healthuc.Status                 `json:"status"`
	Checks  map[string]healthuc.CheckResult `json:"checks"`
	Catalog HealthCatalog                   `json:"catalog"`
}

func productToResponse(p *product.Product) ProductResponse {
	tags := p.Tags()
	if tags == nil {
		tags = []string{}
	}
	return ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Category:    p.Category(),
		Price:       p.Price(),
		Rating:      p.Rating(),
		Description: p.Description(),
		Tags:        tags,
		Image:       p.Image(),
	}
}

func resultToResponse(r *result.Result) ProductResponse {
	p := r.Product()
	resp := productToResponse(&p)
	if r.Scored() {
		score := r.Score()
		resp.SimilarityScore = &score
	}
	return resp
}

func productsToResponse(ps []product.Product) []ProductResponse {
	out := make([]ProductResponse, len(ps))
	for i := range ps {
		out[i] = productToResponse(&ps[i])
	}
	return out
}

func healthToResponse(r *healthuc.Report) HealthResponse {
	resp := HealthResponse{
		Status: r.Status,
		Checks: r.Checks,
		Catalog: HealthCatalog{
			Products:    r.Catalog.Products,
			Terms:       r.Catalog.Terms,
			Fingerprint: r.Catalog.Fingerprint,
		},
	}
	if r.Catalog.Loaded {
		t := r.Catalog.LoadedAt.UTC()
		resp.Catalog.LoadedAt = &t
	}
	return resp
}
