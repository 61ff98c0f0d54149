package textprep

import (
	"github.com/kljensen/snowball/english"
	"go.uber.org/zap"
)

// Hit is a scored search result.
type Hit struct {
	URL   string  `json:"url"`
	Score float64 `json:"score"`
}

// Indexer indexes filtered documents and answers single-term queries.
type Indexer interface {
	// AddDocument indexes one document. Pipeline per token:
	// normalize -> stopword filter (negation/pronoun aware) -> stem.
	AddDocument(url string, tokens []string) error

	// Search ranks documents for a single-term query using TF-IDF.
	Search(term string) ([]Hit, error)

	// Close releases indexer resources.
	Close() error
}

// lessHit orders two hits: higher score first; if scores are equal, URL
// ascending, to keep result order deterministic.
func lessHit(a, b Hit) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.URL < b.URL
}

// stem reduces a normalized token to its snowball stem.
func stem(w string) string { return english.Stem(w, true) }

// analyze runs the full indexing pipeline over raw tokens: filter by cfg,
// then stem each survivor. Stems that collapse to "" are dropped.
func analyze(tokens []string, cfg Config) []string {
	kept := FilterTokens(tokens, cfg)
	out := kept[:0]
	for _, w := range kept {
		if s := stem(w); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// queryTerm maps a raw query term through the same pipeline as indexed
// tokens. Returns "" when the term is filtered out entirely.
func queryTerm(term string, cfg Config) string {
	terms := analyze([]string{term}, cfg)
	if len(terms) == 0 {
		return ""
	}
	return terms[0]
}

// BuildIndexFromURLs downloads each URL, extracts its text and adds it to
// idx. Pages that fail to download are logged and skipped.
func BuildIndexFromURLs(urls []string, idx Indexer, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	for _, u := range urls {
		body, err := Download(u)
		if err != nil {
			log.Warn("download failed, skipping", zap.String("url", u), zap.Error(err))
			continue
		}
		tokens, _ := Extract(body)
		if err := idx.AddDocument(u, tokens); err != nil {
			return err
		}
		log.Info("indexed document", zap.String("url", u), zap.Int("tokens", len(tokens)))
	}
	return nil
}
