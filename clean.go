package textprep

import (
	"net/url"
	"strings"
)

// CleanHref resolves href against base into an absolute URL for crawling.
// The second result is false for links that should be skipped: empty or
// fragment-only refs, javascript:/data: schemes, unparseable bases.
func CleanHref(base, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}
	switch lower := strings.ToLower(href); {
	case strings.HasPrefix(lower, "javascript:"), strings.HasPrefix(lower, "data:"):
		return "", false
	}

	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", false
	}

	refURL, err := url.Parse(href)
	if err != nil {
		refURL = &url.URL{Path: href}
	}

	abs := baseURL.ResolveReference(refURL)
	abs.Fragment = "" // strip #fragment
	return abs.String(), true
}
