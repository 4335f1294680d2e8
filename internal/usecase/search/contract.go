package search

import (
	"context"

	"github.com/kailas-cloud/prodex/internal/domain/catalog"
	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/request"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	"github.com/kailas-cloud/prodex/internal/relevance"
)

// CatalogLoader reads the current catalog from its source.
type CatalogLoader interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// Ranker answers ranking requests against a snapshot, possibly from a cache.
type Ranker interface {
	Search(ctx context.Context, snap *relevance.Snapshot, req request.Request) []result.Result
	Recommend(ctx context.Context, snap *relevance.Snapshot, req request.RecommendRequest) []product.Product
}
