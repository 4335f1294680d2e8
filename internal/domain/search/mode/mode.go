package mode

// Mode describes how a search request ranks the catalog.
type Mode string

// Search mode constants.
const (
	// Relevance ranks products by TF-IDF cosine similarity to the query.
	Relevance Mode = "relevance"
	// Browse returns products unscored, in catalog order (empty query or no index).
	Browse Mode = "browse"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Relevance || m == Browse
}

// Scored reports whether results in this mode carry a similarity score.
func (m Mode) Scored() bool { return m == Relevance }
