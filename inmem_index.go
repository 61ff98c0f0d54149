package textprep

import (
	"math"
	"sort"
)

// InMemIndexer is the in-memory Indexer implementation.
type InMemIndexer struct {
	tf     map[string]map[string]int // stem -> doc -> term freq
	df     map[string]int            // stem -> doc freq
	docLen map[string]int            // doc -> token count (after filter+stem)
	n      int                       // total documents
	cfg    Config                    // filter configuration
}

// NewInMemIndexer creates an empty in-memory indexer using cfg for its
// token filtering stage.
func NewInMemIndexer(cfg Config) *InMemIndexer {
	return &InMemIndexer{
		tf:     make(map[string]map[string]int),
		df:     make(map[string]int),
		docLen: make(map[string]int),
		cfg:    cfg,
	}
}

// AddDocument implements Indexer. Re-adding an already indexed URL is a
// no-op.
func (idx *InMemIndexer) AddDocument(doc string, tokens []string) error {
	if _, dup := idx.docLen[doc]; dup {
		return nil
	}

	terms := analyze(tokens, idx.cfg)
	seen := make(map[string]bool)

	for _, s := range terms {
		if _, ok := idx.tf[s]; !ok {
			idx.tf[s] = make(map[string]int)
		}
		idx.tf[s][doc]++
		seen[s] = true
	}
	for s := range seen {
		idx.df[s]++
	}
	idx.docLen[doc] = len(terms)
	idx.n++
	return nil
}

// Search implements Indexer. Terms that the filter removes (stopwords, or
// words normalized to nothing) match no documents.
func (idx *InMemIndexer) Search(term string) ([]Hit, error) {
	if term == "" || idx.n == 0 {
		return nil, nil
	}
	s := queryTerm(term, idx.cfg)
	if s == "" {
		return nil, nil
	}
	df := idx.df[s]
	if df == 0 {
		return nil, nil
	}
	idf := math.Log(float64(idx.n) / float64(df))

	hits := make([]Hit, 0, len(idx.tf[s]))
	for doc, tfreq := range idx.tf[s] {
		den := idx.docLen[doc]
		if den == 0 {
			continue
		}
		tf := float64(tfreq) / float64(den)
		hits = append(hits, Hit{URL: doc, Score: tf * idf})
	}

	sort.Slice(hits, func(i, j int) bool {
		return lessHit(hits[i], hits[j])
	})
	return hits, nil
}

// GetN returns the total number of indexed documents.
func (idx *InMemIndexer) GetN() int { return idx.n }

// Close implements Indexer. Nothing to release for the in-memory form.
func (idx *InMemIndexer) Close() error { return nil }
