package textprep

import "testing"

// Every word in every set must already be in normalized form, otherwise
// membership tests against normalized tokens would silently miss it.
func TestWordSetsAreCanonical(t *testing.T) {
	sets := map[string]map[string]struct{}{
		"stopwords": DefaultStopwords(),
		"negations": NegationWords(),
		"pronouns":  PronounWords(),
	}
	for name, set := range sets {
		for w := range set {
			if norm := NormalizeToken(w); norm != w {
				t.Fatalf("%s entry %q is not canonical (normalizes to %q)", name, w, norm)
			}
		}
	}
}

func TestWordSetConstructorsReturnCopies(t *testing.T) {
	a := DefaultStopwords()
	b := DefaultStopwords()
	delete(a, "the")
	if _, ok := b["the"]; !ok {
		t.Fatal("DefaultStopwords copies share storage")
	}
}

func TestNegationSetContents(t *testing.T) {
	neg := NegationWords()
	for _, w := range []string{"not", "never", "don't", "cannot"} {
		if _, ok := neg[w]; !ok {
			t.Fatalf("negation set missing %q", w)
		}
	}
	if _, ok := neg["happy"]; ok {
		t.Fatal("negation set should not contain content words")
	}
}
