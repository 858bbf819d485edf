package similarity

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "win a free prize now", "win a free prize now", 1.0},
		{"identical modulo case", "Win A Free Prize", "win a free prize", 1.0},
		{"disjoint", "hello world", "goodbye moon", 0.0},
		{"both empty", "", "", 0.0},
		{"one empty", "hello", "", 0.0},
		{"partial overlap", "the quick brown fox", "the quick red fox", 0.6}, // 3 shared / 5 total
		{"repeated tokens collapse", "spam spam spam", "spam", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"verify your account now", "verify your paypal account"},
		{"free gift waiting", "a gift is waiting for you"},
		{"", "non empty"},
		{"one two three", "three two one four"},
	}
	for _, pair := range pairs {
		ab := Similarity(pair[0], pair[1])
		ba := Similarity(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", pair[0], pair[1], ab, ba)
		}
	}
}

func TestFindSimilar_ThresholdIsStrict(t *testing.T) {
	corpus := []CorpusEntry{{ID: "a", Text: "the quick red fox"}}
	text := "the quick brown fox" // similarity exactly 0.6

	if got := NewEngine(0.6, 10).FindSimilar("new", text, corpus); len(got) != 0 {
		t.Errorf("expected match at exactly the threshold to be dropped, got %v", got)
	}
	got := NewEngine(0.59, 10).FindSimilar("new", text, corpus)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected one match above threshold, got %v", got)
	}
	if math.Abs(got[0].Score-0.6) > 1e-9 {
		t.Errorf("match score = %v, want 0.6", got[0].Score)
	}
}

func TestFindSimilar_OrderAndLimit(t *testing.T) {
	corpus := []CorpusEntry{
		{ID: "low", Text: "verify account please kindly regards"},
		{ID: "exact", Text: "urgent verify your account now"},
		{ID: "close", Text: "urgent verify your account"},
	}
	engine := NewEngine(0.3, 2)

	got := engine.FindSimilar("new", "urgent verify your account now", corpus)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches after limit, got %d", len(got))
	}
	if got[0].ID != "exact" || got[1].ID != "close" {
		t.Errorf("matches out of order: %v", got)
	}
	if got[0].Score < got[1].Score {
		t.Errorf("scores not descending: %v", got)
	}
}

func TestFindSimilar_NeverMatchesSelf(t *testing.T) {
	corpus := []CorpusEntry{
		{ID: "self", Text: "urgent verify your account now"},
		{ID: "other", Text: "urgent verify your account now"},
	}
	got := NewEngine(0.3, 10).FindSimilar("self", "urgent verify your account now", corpus)
	if len(got) != 1 || got[0].ID != "other" {
		t.Fatalf("expected only the other entry, got %v", got)
	}
}

func TestFindSimilar_SkipsEmptyEntries(t *testing.T) {
	corpus := []CorpusEntry{
		{ID: "blank", Text: ""},
		{ID: "match", Text: "free prize inside"},
	}
	got := NewEngine(0.3, 10).FindSimilar("new", "free prize inside", corpus)
	if len(got) != 1 || got[0].ID != "match" {
		t.Fatalf("expected blank entry skipped, got %v", got)
	}
}

func TestFindSimilar_EmptyCorpus(t *testing.T) {
	if got := NewEngine(0.3, 10).FindSimilar("new", "anything at all", nil); len(got) != 0 {
		t.Errorf("expected no matches on empty corpus, got %v", got)
	}
}

// A corpus entry sharing ~90% of its tokens must come back with a weight
// close to the overlap ratio and well above the 0.3 default threshold.
func TestFindSimilar_HighOverlapScenario(t *testing.T) {
	prior := "urgent your paypal account has been suspended verify now today"
	submitted := "urgent your paypal account was suspended verify now today"

	got := NewEngine(0.3, 10).FindSimilar("new", submitted, []CorpusEntry{{ID: "prior", Text: prior}})
	if len(got) != 1 {
		t.Fatalf("expected one match, got %v", got)
	}
	// 8 shared tokens, 11 in the union.
	want := 8.0 / 11.0
	if math.Abs(got[0].Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", got[0].Score, want)
	}
	if got[0].Score <= 0.3 {
		t.Errorf("score %v should clear the 0.3 threshold", got[0].Score)
	}
}
