package textprep

import (
	"strings"
	"testing"
)

func TestSQLiteIndexer(t *testing.T) {
	idx, err := NewSQLiteIndexer(":memory:", DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create SQLite indexer: %v", err)
	}
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

	// Searching a stopword -> nil
	hits, err = idx.Search("the")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if hits != nil {
		t.Fatalf("stopword search should be nil; got %#v", hits)
	}
}

func TestSQLiteIndexerDuplicateAdd(t *testing.T) {
	idx, err := NewSQLiteIndexer(":memory:", DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create SQLite indexer: %v", err)
	}
	defer idx.Close()

	words := strings.Fields("whale ship")
	if err := idx.AddDocument("doc1", words); err != nil {
		t.Fatalf("AddDocument error: %v", err)
	}
	if err := idx.AddDocument("doc1", words); err != nil {
		t.Fatalf("duplicate AddDocument error: %v", err)
	}

	hits, err := idx.Search("whale")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("duplicate add should leave one posting; got %#v", hits)
	}
}

// The two indexer implementations must rank identically.
func TestSQLiteMatchesInMem(t *testing.T) {
	docs := map[string][]string{
		"docA": strings.Fields("whale whale whale ocean"),
		"docB": strings.Fields("whale ship harbor ocean storm"),
		"docC": strings.Fields("ship harbor storm"),
	}

	mem := NewInMemIndexer(DefaultConfig())
	defer mem.Close()
	sq, err := NewSQLiteIndexer(":memory:", DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create SQLite indexer: %v", err)
	}
	defer sq.Close()

	for _, doc := range []string{"docA", "docB", "docC"} {
		mem.AddDocument(doc, docs[doc])
		if err := sq.AddDocument(doc, docs[doc]); err != nil {
			t.Fatalf("AddDocument error: %v", err)
		}
	}

	memHits, err := mem.Search("whale")
	if err != nil {
		t.Fatalf("mem Search error: %v", err)
	}
	sqHits, err := sq.Search("whale")
	if err != nil {
		t.Fatalf("sqlite Search error: %v", err)
	}
	if len(memHits) != len(sqHits) {
		t.Fatalf("hit counts differ: mem=%#v sqlite=%#v", memHits, sqHits)
	}
	for i := range memHits {
		if memHits[i].URL != sqHits[i].URL {
			t.Fatalf("ranking differs at %d: mem=%#v sqlite=%#v", i, memHits, sqHits)
		}
	}
}
