package textindex

import (
	"math"
	"reflect"
	"testing"
)

const eps = 1e-9

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lower and split", "Wireless Bluetooth-Headphones", []string{"wireless", "bluetooth", "headphones"}},
		{"stop words dropped", "Track your steps and the sleep", []string{"track", "steps", "sleep"}},
		{"short tokens dropped", "a b cd 4 42", []string{"cd", "42"}},
		{"punctuation", "school, work, and travel!", []string{"school", "work", "travel"}},
		{"contraction", "don't stop", []string{"stop"}},
		{"unicode", "Café CRÈME", []string{"café", "crème"}},
		{"empty", "", []string{}},
		{"only stop words", "the and of", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	if idx := Build(nil); idx != nil {
		t.Error("Build(nil) should return nil")
	}
	if idx := Build([]string{}); idx != nil {
		t.Error("Build(empty) should return nil")
	}
}

func TestBuild_VocabularySortedAndIDF(t *testing.T) {
	idx := Build([]string{"red apple", "green apple"})
	if idx == nil {
		t.Fatal("expected index")
	}

	want := []string{"apple", "green", "red"}
	if !reflect.DeepEqual(idx.Vocabulary(), want) {
		t.Fatalf("Vocabulary() = %v, want %v", idx.Vocabulary(), want)
	}
	if idx.Dim() != 3 || idx.Len() != 2 {
		t.Fatalf("Dim() = %d, Len() = %d", idx.Dim(), idx.Len())
	}

	apple, _ := idx.Term("apple")
	red, _ := idx.Term("red")
	if math.Abs(idx.IDF(apple)-1) > eps {
		t.Errorf("idf(apple) = %v, want 1", idx.IDF(apple))
	}
	wantRed := math.Log(3.0/2.0) + 1
	if math.Abs(idx.IDF(red)-wantRed) > eps {
		t.Errorf("idf(red) = %v, want %v", idx.IDF(red), wantRed)
	}
	if _, ok := idx.Term("banana"); ok {
		t.Error("unexpected term banana")
	}
}

func TestBuild_RowsNormalized(t *testing.T) {
	idx := Build([]string{"red apple apple", "green apple", "the of and"})

	for i := 0; i < 2; i++ {
		var sum float64
		for _, f := range idx.Row(i) {
			sum += f * f
		}
		if math.Abs(sum-1) > eps {
			t.Errorf("row %d squared norm = %v, want 1", i, sum)
		}
	}

	// a document made only of stop words has a zero row
	for _, f := range idx.Row(2) {
		if f != 0 {
			t.Fatalf("row 2 should be zero, got %v", idx.Row(2))
		}
	}
}

func TestBuild_TermFrequencyCounts(t *testing.T) {
	idx := Build([]string{"apple apple red", "apple red"})
	apple, _ := idx.Term("apple")
	red, _ := idx.Term("red")

	r0 := idx.Row(0)
	// both terms share idf=1, so the row keeps the 2:1 count ratio
	if math.Abs(r0[apple]/r0[red]-2) > eps {
		t.Errorf("apple/red ratio = %v, want 2", r0[apple]/r0[red])
	}
}

func TestBuild_Deterministic(t *testing.T) {
	docs := []string{"wireless headphones audio", "smartphone camera", "coffee maker brew"}
	a := Build(docs)
	b := Build(docs)
	if !reflect.DeepEqual(a.Vocabulary(), b.Vocabulary()) {
		t.Fatal("vocabulary differs between builds")
	}
	for i := range docs {
		if !reflect.DeepEqual(a.Row(i), b.Row(i)) {
			t.Errorf("row %d differs between builds", i)
		}
	}
}

func TestVectorize_UnknownTermsIgnored(t *testing.T) {
	idx := Build([]string{"red apple", "green apple"})

	v := idx.Vectorize("zebra xylophone")
	if len(v) != idx.Dim() {
		t.Fatalf("len = %d, want %d", len(v), idx.Dim())
	}
	for _, f := range v {
		if f != 0 {
			t.Fatalf("expected zero vector, got %v", v)
		}
	}

	mixed := idx.Vectorize("Red zebra")
	red, _ := idx.Term("red")
	if math.Abs(mixed[red]-1) > eps {
		t.Errorf("normalized single-term vector should be 1 at red, got %v", mixed)
	}
}

func TestVectorize_MatchesRow(t *testing.T) {
	docs := []string{"red apple", "green apple"}
	idx := Build(docs)
	for i, d := range docs {
		if !reflect.DeepEqual(idx.Vectorize(d), idx.Row(i)) {
			t.Errorf("Vectorize(doc %d) differs from Row(%d)", i, i)
		}
	}
}

func TestSimilarities(t *testing.T) {
	idx := Build([]string{"red apple", "green apple"})
	scores := idx.Similarities(idx.Row(0))
	if len(scores) != 2 {
		t.Fatalf("len = %d", len(scores))
	}
	if math.Abs(scores[0]-1) > eps {
		t.Errorf("self similarity = %v, want 1", scores[0])
	}

	w := math.Log(1.5) + 1
	want := 1 / (1 + w*w)
	if math.Abs(scores[1]-want) > eps {
		t.Errorf("cross similarity = %v, want %v", scores[1], want)
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"scaled", []float64{1, 2}, []float64{2, 4}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero a", []float64{0, 0}, []float64{1, 1}, 0},
		{"zero b", []float64{1, 1}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1}, []float64{1, 1}, 0},
		{"opposite clamped", []float64{1, 0}, []float64{-1, 0}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"the", "and", "your", "with"} {
		if !IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = false", w)
		}
	}
	for _, w := range []string{"headphones", "coffee", "The"} {
		if IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = true", w)
		}
	}
}
