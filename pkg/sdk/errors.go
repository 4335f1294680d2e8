package prodex

import "github.com/kailas-cloud/prodex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrInvalidQuery     = domain.ErrInvalidQuery
	ErrInvalidProduct   = domain.ErrInvalidProduct
	ErrDuplicateProduct = domain.ErrDuplicateProduct
	ErrCatalogNotLoaded = domain.ErrCatalogNotLoaded
)
