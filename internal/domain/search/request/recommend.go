package request

import "strconv"

// RecommendRequest is a validated "similar products" query.
type RecommendRequest struct {
	productID int64
	count     int
}

// NewRecommend normalizes recommendation parameters.
// count <= 0 selects DefaultRecommendCount; counts above maxCount are clamped.
// maxCount <= 0 falls back to MaxRecommendCount.
func NewRecommend(productID int64, count, maxCount int) RecommendRequest {
	if maxCount <= 0 || maxCount > MaxRecommendCount {
		maxCount = MaxRecommendCount
	}
	if count <= 0 {
		count = DefaultRecommendCount
	}
	if count > maxCount {
		count = maxCount
	}
	return RecommendRequest{productID: productID, count: count}
}

// ProductID returns the target product.
func (r *RecommendRequest) ProductID() int64 { return r.productID }

// Count returns the maximum number of recommendations.
func (r *RecommendRequest) Count() int { return r.count }

// Key is a canonical string form, stable for equal requests.
func (r *RecommendRequest) Key() string {
	return "id=" + strconv.FormatInt(r.productID, 10) + ";n=" + strconv.Itoa(r.count)
}
