package textprep

import (
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Crawl walks a site breadth-first from start, staying on the same host,
// and returns up to max page URLs in visit order. Download failures on
// individual pages are logged and skipped. A nil logger disables logging.
func Crawl(start string, max int, log *zap.Logger) ([]string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if max <= 0 {
		return []string{}, nil
	}

	startURL, err := url.Parse(start)
	if err != nil {
		return nil, err
	}
	// Used only for the same-host check, never as a base for resolving links.
	hostBase := startURL.Scheme + "://" + startURL.Host + "/"

	visited := make(map[string]bool)
	queue := []string{start}
	order := make([]string, 0, max)

	for len(queue) > 0 && len(order) < max {
		cur := queue[0]
		queue = queue[1:]

		if visited[cur] {
			continue
		}
		visited[cur] = true
		order = append(order, cur)

		body, err := Download(cur)
		if err != nil {
			log.Warn("download failed, skipping", zap.String("url", cur), zap.Error(err))
			continue
		}

		_, hrefs := Extract(body)
		for _, h := range hrefs {
			abs, ok := CleanHref(cur, h)
			if !ok {
				continue
			}
			if !strings.HasPrefix(abs, hostBase) {
				continue
			}
			if !visited[abs] {
				queue = append(queue, abs)
			}
		}
		log.Debug("crawled page",
			zap.String("url", cur),
			zap.Int("links", len(hrefs)),
			zap.Int("queued", len(queue)))
	}
	return order, nil
}
