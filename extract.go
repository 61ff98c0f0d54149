package textprep

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Extract parses an HTML page and returns its visible text as raw
// whitespace-delimited tokens, plus the raw href values of <a> elements.
// Tokens keep their punctuation: normalization happens later in the filter,
// which needs the original forms to recognize contractions like "don't".
func Extract(body []byte) ([]string, []string) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, nil
	}

	var tokens []string
	var hrefs []string

	// Skip depth tracks nesting under <script> or <style>: text inside
	// those elements is code, not content.
	var skipDepth int

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (strings.EqualFold(n.Data, "script") || strings.EqualFold(n.Data, "style")) {
			skipDepth++
		}

		if skipDepth == 0 {
			if n.Type == html.TextNode {
				tokens = append(tokens, strings.Fields(n.Data)...)
			}
			if n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
				for _, a := range n.Attr {
					if strings.EqualFold(a.Key, "href") {
						if val := strings.TrimSpace(a.Val); val != "" {
							hrefs = append(hrefs, val)
						}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && (strings.EqualFold(n.Data, "script") || strings.EqualFold(n.Data, "style")) {
			skipDepth--
		}
	}
	walk(root)
	return tokens, hrefs
}
