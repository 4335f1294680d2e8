// Package textindex builds TF-IDF feature vectors over product text.
//
// Weights follow the smoothed scheme
//
//	w(t, d) = count(t, d) * (ln((1+N) / (1+df(t))) + 1)
//
// and every row is L2-normalised. Queries are vectorized against the same
// vocabulary and IDF table; terms outside the vocabulary are ignored.
package textindex

import (
	"math"
	"sort"
)

// Index is an immutable vocabulary plus one feature row per document.
// Row order matches the order of the documents passed to Build.
type Index struct {
	vocabulary []string
	terms      map[string]int
	idf        []float64
	rows       [][]float64
}

// Build fits the vocabulary and IDF table on docs and vectorizes every doc.
// It returns nil for an empty corpus: there is no index to query.
func Build(docs []string) *Index {
	if len(docs) == 0 {
		return nil
	}

	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	n := float64(len(docs))
	terms := make(map[string]int, len(vocabulary))
	idf := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		terms[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	idx := &Index{vocabulary: vocabulary, terms: terms, idf: idf}
	idx.rows = make([][]float64, len(docs))
	for i, tokens := range tokenized {
		idx.rows[i] = idx.weigh(tokens)
	}
	return idx
}

// Dim returns the vector dimension (vocabulary size).
func (x *Index) Dim() int { return len(x.vocabulary) }

// Len returns the number of rows.
func (x *Index) Len() int { return len(x.rows) }

// Vocabulary returns a copy of the terms in dimension order.
func (x *Index) Vocabulary() []string {
	out := make([]string, len(x.vocabulary))
	copy(out, x.vocabulary)
	return out
}

// Term returns the dimension of term.
func (x *Index) Term(term string) (int, bool) {
	i, ok := x.terms[term]
	return i, ok
}

// IDF returns the inverse document frequency of dimension i.
func (x *Index) IDF(i int) float64 { return x.idf[i] }

// Row returns the feature row of document i. Callers must not modify it.
func (x *Index) Row(i int) []float64 { return x.rows[i] }

// Vectorize converts text to a normalised vector in the index space.
// Unknown terms contribute nothing; text with no known terms yields a zero vector.
func (x *Index) Vectorize(text string) []float64 {
	return x.weigh(Tokenize(text))
}

// Similarities returns the cosine similarity of v against every row.
func (x *Index) Similarities(v []float64) []float64 {
	scores := make([]float64, len(x.rows))
	for i, row := range x.rows {
		scores[i] = Cosine(v, row)
	}
	return scores
}

func (x *Index) weigh(tokens []string) []float64 {
	vec := make([]float64, len(x.vocabulary))
	for _, tok := range tokens {
		if i, ok := x.terms[tok]; ok {
			vec[i]++
		}
	}
	for i := range vec {
		vec[i] *= x.idf[i]
	}
	normalize(vec)
	return vec
}

func normalize(v []float64) {
	var sum float64
	for _, f := range v {
		sum += f * f
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}

// Cosine returns dot(a, b) / (|a| * |b|), clamped to [0, 1].
// It is 0 when either vector has zero magnitude or the lengths differ.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	s := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}
