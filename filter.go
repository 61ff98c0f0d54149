package textprep

import (
	"fmt"
	"strings"
)

// Config controls stopword filtering.
// The zero value keeps neither negations nor pronouns; DefaultConfig gives
// the usual sentiment-friendly defaults.
type Config struct {
	// Stopwords is the active stopword set. Nil selects the package default.
	// The filter only reads it; it is never mutated.
	Stopwords map[string]struct{}

	// KeepNegations retains negation words ("not", "never", "don't", ...)
	// even when the active stopword set contains them. This check runs
	// before the pronoun and stopword checks.
	KeepNegations bool

	// KeepPronouns retains personal pronouns, checked after negations and
	// before the stopword check.
	KeepPronouns bool
}

// DefaultConfig returns the default filter configuration: default stopword
// set, negations kept, pronouns dropped.
func DefaultConfig() Config {
	return Config{KeepNegations: true}
}

func (cfg Config) stopwords() map[string]struct{} {
	if cfg.Stopwords == nil {
		return defaultStopwords
	}
	return cfg.Stopwords
}

// FilterTokens filters a pre-tokenized sequence. Each token is normalized;
// empty results are discarded. The retention checks run in a fixed priority
// order: negation, then pronoun, then stopword membership. Output order
// matches input order and tokens are emitted in their normalized form.
func FilterTokens(tokens []string, cfg Config) []string {
	stop := cfg.stopwords()
	kept := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		norm := NormalizeToken(tok)
		if norm == "" {
			continue
		}
		if cfg.KeepNegations {
			if _, ok := negationWords[norm]; ok {
				kept = append(kept, norm)
				continue
			}
		}
		if cfg.KeepPronouns {
			if _, ok := pronounWords[norm]; ok {
				kept = append(kept, norm)
				continue
			}
		}
		if _, bad := stop[norm]; bad {
			continue
		}
		kept = append(kept, norm)
	}
	return kept
}

// FilterText whitespace-tokenizes text and filters it. Tokenization is
// strings.Fields: runs of any whitespace separate tokens, nothing more.
func FilterText(text string, cfg Config) []string {
	return FilterTokens(strings.Fields(text), cfg)
}

// ReturnType selects the output shape at boundaries where it arrives as a
// string (query parameter, flag value).
type ReturnType string

const (
	ReturnTokens ReturnType = "tokens"
	ReturnText   ReturnType = "text"
)

// ParseReturnType validates a return type value. The empty string selects
// ReturnTokens, the documented default; anything else unrecognized is an
// error rather than a silent fallback.
func ParseReturnType(s string) (ReturnType, error) {
	switch ReturnType(s) {
	case "":
		return ReturnTokens, nil
	case ReturnTokens:
		return ReturnTokens, nil
	case ReturnText:
		return ReturnText, nil
	}
	return "", fmt.Errorf("unknown return type %q (want %q or %q)", s, ReturnTokens, ReturnText)
}

// JoinTokens renders the text output shape: tokens joined by single spaces.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
