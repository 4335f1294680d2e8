package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a product id that is not in the catalog.
	ErrNotFound = errors.New("product not found")
	// ErrInvalidFilter signals a malformed numeric filter at the boundary.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidQuery signals a search query that exceeds the length limit.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidProduct signals a product record that fails validation.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrDuplicateProduct signals two catalog entries sharing an id.
	ErrDuplicateProduct = errors.New("duplicate product id")
	// ErrCatalogNotLoaded signals a query before the first snapshot was installed.
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
)

// InvalidFilterError wraps ErrInvalidFilter with the offending parameter.
type InvalidFilterError struct {
	Param string
	Value string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("%s: %s=%q is not a number", ErrInvalidFilter.Error(), e.Param, e.Value)
}

func (e *InvalidFilterError) Unwrap() error { return ErrInvalidFilter }

// NewInvalidFilter creates an invalid filter error for a query parameter.
func NewInvalidFilter(param, value string) error {
	return &InvalidFilterError{Param: param, Value: value}
}
