package textprep

// The word sets below are the canonical data for filtering. Every entry is
// already in normalized form (lower-case, outer punctuation stripped);
// membership tests against unnormalized values would silently fail.

// DefaultStopwords returns the default English stopword set.
// Callers get a fresh copy: mutating it never affects other callers or the
// package's own filtering.
func DefaultStopwords() map[string]struct{} {
	ws := []string{
		// articles
		"a", "an", "the",
		// conjunctions and other high-frequency function words
		"and", "or", "but", "so", "because", "as", "if", "than", "then",
		"that", "this", "these", "those",
		// prepositions
		"in", "on", "at", "to", "from", "of", "for", "with", "about",
		"into", "over", "under", "between", "after", "before", "during",
		"through", "against", "without", "within",
		// auxiliary verbs
		"is", "am", "are", "was", "were", "be", "been", "being",
		"do", "does", "did",
		"have", "has", "had",
		// modal verbs
		"can", "could", "may", "might", "must", "shall", "should",
		"will", "would",
		// low-value adverbs
		"very", "really", "just", "also", "too", "quite", "rather",
		// misc
		"it", "its", "it's", "im", "i'm", "youre", "you're", "theyre", "they're",
	}
	return toSet(ws)
}

// NegationWords returns the negation set. Negations usually carry the
// meaning a downstream sentiment stage needs, so the filter can be told to
// retain them even when the active stopword set contains them.
func NegationWords() map[string]struct{} {
	ws := []string{
		"no", "not", "never", "none", "nothing", "nowhere",
		"can't", "cannot", "dont", "don't", "doesn't", "didn't",
		"won't", "wouldn't", "shouldn't", "isn't", "aren't", "wasn't", "weren't",
	}
	return toSet(ws)
}

// PronounWords returns the personal pronoun set, optionally retained.
func PronounWords() map[string]struct{} {
	ws := []string{
		"i", "me", "my", "mine",
		"we", "us", "our", "ours",
		"you", "your", "yours",
		"he", "him", "his",
		"she", "her", "hers",
		"they", "them", "their", "theirs",
	}
	return toSet(ws)
}

func toSet(ws []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		m[w] = struct{}{}
	}
	return m
}

// Private copies built once at init. They back the nil-Stopwords default in
// Config and are never handed out, so nothing outside this package can
// mutate them.
var (
	defaultStopwords = DefaultStopwords()
	negationWords    = NegationWords()
	pronounWords     = PronounWords()
)
