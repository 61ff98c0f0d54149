package textprep

import (
	"encoding/json"
	"net/http"
)

// FilterResponse is the JSON body of /filter. Exactly one field is set,
// matching the requested return type. Tokens is always an array in the
// tokens shape, never null or absent, matching how /search reports no hits.
type FilterResponse struct {
	Tokens []string `json:"tokens"`
	Text   *string  `json:"text,omitempty"`
}

// NewMux provides /filter and /search as JSON endpoints.
// Library-only: does not start the server by itself. cfg is the filter
// configuration for /filter defaults; per-request query parameters override
// the keep flags. idx may be nil, in which case /search always returns an
// empty result.
func NewMux(idx Indexer, cfg Config) http.Handler {
	mux := http.NewServeMux()

	// /filter?text=...&keep_negations=&keep_pronouns=&return_type=
	mux.HandleFunc("/filter", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		rt, err := ParseReturnType(q.Get("return_type"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		reqCfg := cfg
		if v := q.Get("keep_negations"); v != "" {
			reqCfg.KeepNegations = v == "true" || v == "1"
		}
		if v := q.Get("keep_pronouns"); v != "" {
			reqCfg.KeepPronouns = v == "true" || v == "1"
		}

		tokens := FilterText(q.Get("text"), reqCfg)

		w.Header().Set("Content-Type", "application/json")
		if rt == ReturnText {
			_ = json.NewEncoder(w).Encode(struct {
				Text string `json:"text"`
			}{JoinTokens(tokens)})
			return
		}
		_ = json.NewEncoder(w).Encode(FilterResponse{Tokens: tokens})
	})

	// /search?q=term -> JSON hits
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		var hits []Hit
		if idx != nil {
			var err error
			hits, err = idx.Search(r.URL.Query().Get("q"))
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		if hits == nil {
			hits = []Hit{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(hits)
	})

	return mux
}
