package textprep

import "strings"

// tokenPunct is the punctuation stripped from token edges. Internal
// punctuation is left alone: "don't" must survive intact because the
// contraction forms appear verbatim in the negation set.
const tokenPunct = `.,!?;:"'()[]{}<>`

// NormalizeToken lower-cases a token and strips punctuation from both ends.
// Total over all strings; the result may be empty (e.g. for "...").
// Idempotent: normalizing twice gives the same result.
func NormalizeToken(tok string) string {
	t := strings.ToLower(tok)
	for len(t) > 0 && strings.ContainsRune(tokenPunct, rune(t[0])) {
		t = t[1:]
	}
	for len(t) > 0 && strings.ContainsRune(tokenPunct, rune(t[len(t)-1])) {
		t = t[:len(t)-1]
	}
	return t
}
