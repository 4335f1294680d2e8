package health

import (
	"context"

	"github.com/kailas-cloud/prodex/internal/usecase/search"
)

// CachePinger checks rank cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// CatalogStatus reports the active catalog snapshot.
type CatalogStatus interface {
	Status() search.Status
}
