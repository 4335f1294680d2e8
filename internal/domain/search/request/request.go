package request

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/prodex/internal/domain"
	"github.com/kailas-cloud/prodex/internal/domain/search/filter"
	"github.com/kailas-cloud/prodex/internal/domain/search/mode"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length in runes.
	MaxQueryLength        = 1024
	DefaultRecommendCount = 4
	MaxRecommendCount     = 50
)

// Request is a validated search query.
type Request struct {
	query   string
	filters filter.Filter
}

// New validates and normalizes search parameters.
// The query is trimmed; an empty query is valid and selects browse mode.
func New(query string, filters filter.Filter) (Request, error) {
	return NewLimited(query, filters, MaxQueryLength)
}

// NewLimited is New with a configurable query length limit in runes.
// maxLen <= 0 selects MaxQueryLength.
func NewLimited(query string, filters filter.Filter, maxLen int) (Request, error) {
	if maxLen <= 0 {
		maxLen = MaxQueryLength
	}
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) > maxLen {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, maxLen)
	}
	return Request{query: query, filters: filters}, nil
}

// Query returns the search query text.
func (r *Request) Query() string { return r.query }

// Filters returns the post-ranking filter.
func (r *Request) Filters() filter.Filter { return r.filters }

// Mode returns relevance for a non-empty query, browse otherwise.
func (r *Request) Mode() mode.Mode {
	if r.query == "" {
		return mode.Browse
	}
	return mode.Relevance
}

// Key is a canonical string form, stable for equal requests. The query is
// kept as given: lower-casing the whole string does not always agree with
// lower-casing each token after splitting.
func (r *Request) Key() string {
	return "q=" + r.query + ";" + r.filters.Key()
}
