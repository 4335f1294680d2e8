// Package relevance ranks a catalog against a free-text query or a target
// product. Functions borrow the catalog and index they are given and keep no
// state, so one snapshot can serve any number of concurrent readers.
package relevance

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/prodex/internal/domain/catalog"
	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/filter"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	"github.com/kailas-cloud/prodex/internal/textindex"
)

// Search ranks the catalog against query and applies f after ranking.
//
// A non-empty query with an index scores every product by cosine similarity
// and sorts by descending score, ties kept in catalog order. Otherwise every
// product is an unscored candidate in catalog order. The returned slice is
// never nil.
func Search(cat *catalog.Catalog, idx *textindex.Index, query string, f filter.Filter) []result.Result {
	if cat == nil {
		return []result.Result{}
	}

	candidates := make([]result.Result, cat.Len())
	query = strings.TrimSpace(query)
	if query != "" && consistent(cat, idx) {
		scores := idx.Similarities(idx.Vectorize(query))
		for i := range candidates {
			candidates[i] = result.New(cat.At(i), scores[i])
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score() > candidates[j].Score()
		})
	} else {
		for i := range candidates {
			candidates[i] = result.Unscored(cat.At(i))
		}
	}

	if f.IsEmpty() {
		return candidates
	}

	filtered := make([]result.Result, 0, len(candidates))
	for i := range candidates {
		p := candidates[i].Product()
		if f.Matches(&p) {
			filtered = append(filtered, candidates[i])
		}
	}
	return filtered
}

// Recommend returns up to count products most similar to productID.
//
// The target itself is removed before the ranking is truncated, so a catalog
// with at least count+1 products always yields count recommendations. An
// unknown id, an empty catalog or count <= 0 yield an empty, non-nil slice.
func Recommend(cat *catalog.Catalog, idx *textindex.Index, productID int64, count int) []product.Product {
	ranked := Similar(cat, idx, productID)
	if count < len(ranked) {
		ranked = ranked[:max(count, 0)]
	}
	return result.Products(ranked)
}

// Similar scores every other product against productID, best first.
// Ties keep catalog order. The target is never part of the result.
func Similar(cat *catalog.Catalog, idx *textindex.Index, productID int64) []result.Result {
	if cat == nil || !consistent(cat, idx) {
		return []result.Result{}
	}
	target, ok := cat.IndexOf(productID)
	if !ok {
		return []result.Result{}
	}

	scores := idx.Similarities(idx.Row(target))
	ranked := make([]result.Result, 0, cat.Len()-1)
	for i := 0; i < cat.Len(); i++ {
		if i == target {
			continue
		}
		ranked = append(ranked, result.New(cat.At(i), scores[i]))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})
	return ranked
}

// consistent reports whether idx has exactly one row per catalog product.
func consistent(cat *catalog.Catalog, idx *textindex.Index) bool {
	return idx != nil && idx.Len() == cat.Len()
}
