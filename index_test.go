package textprep

import (
	"strings"
	"testing"
)

func TestInMemIndexerAddAndSearch(t *testing.T) {
	idx := NewInMemIndexer(DefaultConfig())
	defer idx.Close()

	text := []byte(`<html><body>whale whale ship and the</body></html>`)
	tokens, _ := Extract(text)
	if err := idx.AddDocument("doc1", tokens); err != nil {
		t.Fatalf("AddDocument error: %v", err)
	}

	hits, err := idx.Search("whale")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(hits) == 0 {
		t.Fatalf("Expected hits for 'whale', got none")
	}
	if hits[0].URL != "doc1" {
		t.Fatalf("top hit=%q; want doc1", hits[0].URL)
	}

	// Searching a stopword -> nil
	hits, err = idx.Search("the")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if hits != nil {
		t.Fatalf("stopword search should be nil; got %#v", hits)
	}
}

// Negations survive the filter stage, so they are searchable.
func TestInMemIndexerKeepsNegations(t *testing.T) {
	idx := NewInMemIndexer(DefaultConfig())
	defer idx.Close()

	if err := idx.AddDocument("review", strings.Fields("not happy with the battery")); err != nil {
		t.Fatalf("AddDocument error: %v", err)
	}
	hits, err := idx.Search("not")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(hits) != 1 || hits[0].URL != "review" {
		t.Fatalf("Expected 'not' to be indexed; got %#v", hits)
	}
}

func TestInMemIndexerRanking(t *testing.T) {
	idx := NewInMemIndexer(DefaultConfig())
	defer idx.Close()

	// "whale" dominates docA; docB mentions it once among other words.
	idx.AddDocument("docA", strings.Fields("whale whale whale ocean"))
	idx.AddDocument("docB", strings.Fields("whale ship harbor ocean storm"))
	idx.AddDocument("docC", strings.Fields("ship harbor storm"))

	hits, err := idx.Search("whale")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %#v", hits)
	}
	if hits[0].URL != "docA" || hits[1].URL != "docB" {
		t.Fatalf("ranking wrong: %#v", hits)
	}
	if hits[0].Score <= hits[1].Score {
		t.Fatalf("docA should outscore docB: %#v", hits)
	}
}

func TestInMemIndexerDuplicateAdd(t *testing.T) {
	idx := NewInMemIndexer(DefaultConfig())
	defer idx.Close()

	words := strings.Fields("whale ship")
	idx.AddDocument("doc1", words)
	idx.AddDocument("doc1", words)
	if idx.GetN() != 1 {
		t.Fatalf("duplicate AddDocument counted twice: N=%d", idx.GetN())
	}
}

// Stemming folds inflected forms onto one term.
func TestInMemIndexerStemming(t *testing.T) {
	idx := NewInMemIndexer(DefaultConfig())
	defer idx.Close()

	idx.AddDocument("doc1", strings.Fields("running runs"))
	hits, err := idx.Search("run")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("Expected stemmed match for 'run'; got %#v", hits)
	}
}
