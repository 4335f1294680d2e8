package relevance

import (
	"github.com/kailas-cloud/prodex/internal/domain/catalog"
	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/filter"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	"github.com/kailas-cloud/prodex/internal/textindex"
)

// Snapshot pairs a catalog with the index built from it.
// A Snapshot is immutable; replace it as a whole when the catalog changes.
type Snapshot struct {
	catalog *catalog.Catalog
	index   *textindex.Index
}

// NewSnapshot builds the index for cat. A nil catalog is treated as empty.
func NewSnapshot(cat *catalog.Catalog) *Snapshot {
	if cat == nil {
		cat = catalog.Empty()
	}
	return &Snapshot{catalog: cat, index: textindex.Build(cat.Texts())}
}

// Catalog returns the catalog the snapshot was built from.
func (s *Snapshot) Catalog() *catalog.Catalog { return s.catalog }

// Index returns the index, or nil for an empty catalog.
func (s *Snapshot) Index() *textindex.Index { return s.index }

// Search runs Search against this snapshot.
func (s *Snapshot) Search(query string, f filter.Filter) []result.Result {
	return Search(s.catalog, s.index, query, f)
}

// Recommend runs Recommend against this snapshot.
func (s *Snapshot) Recommend(productID int64, count int) []product.Product {
	return Recommend(s.catalog, s.index, productID, count)
}
