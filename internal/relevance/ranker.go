package relevance

import (
	"context"

	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/request"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
)

// Ranker answers validated requests against a snapshot. Decorators such as a
// result cache wrap it; Direct is the terminal implementation.
type Ranker interface {
	Search(ctx context.Context, snap *Snapshot, req request.Request) []result.Result
	Recommend(ctx context.Context, snap *Snapshot, req request.RecommendRequest) []product.Product
}

// Direct ranks every request from scratch.
type Direct struct{}

var _ Ranker = Direct{}

// Search implements Ranker.
func (Direct) Search(_ context.Context, snap *Snapshot, req request.Request) []result.Result {
	return snap.Search(req.Query(), req.Filters())
}

// Recommend implements Ranker.
func (Direct) Recommend(_ context.Context, snap *Snapshot, req request.RecommendRequest) []product.Product {
	return snap.Recommend(req.ProductID(), req.Count())
}
