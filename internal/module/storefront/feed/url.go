package feed

import (
	"net/url"
	"strings"
)

// collapseDoubleSlashes repairs paths produced by naive upstream URL
// joining ("/events//page/2") without touching the scheme separator.
func collapseDoubleSlashes(raw string) string {
	scheme := ""
	rest := raw

	if idx := strings.Index(raw, "://"); idx >= 0 {
		scheme = raw[:idx+3]
		rest = raw[idx+3:]
	}

	for strings.Contains(rest, "//") {
		rest = strings.ReplaceAll(rest, "//", "/")
	}

	return scheme + rest
}

// normalizeNextPage turns the upstream's next_page pointer into a fully
// qualified request URL. The pointer may be absent, a full URL, a relative
// path, or a bare query string (contains '=' but no scheme or path).
// Returns false when there is no usable next page, including the
// self-referential case.
func normalizeNextPage(currentURL, nextPage string) (string, bool) {
	next := strings.TrimSpace(nextPage)
	if next == "" {
		return "", false
	}

	cur, err := url.Parse(currentURL)
	if err != nil {
		return "", false
	}

	var resolved string
	switch {
	case strings.HasPrefix(next, "http://") || strings.HasPrefix(next, "https://"):
		resolved = next

	case strings.HasPrefix(next, "?"):
		resolved = cur.Scheme + "://" + cur.Host + cur.Path + next

	case strings.Contains(next, "=") && !strings.Contains(next, "/"):
		// A bare query string is a continuation of the same endpoint.
		resolved = cur.Scheme + "://" + cur.Host + cur.Path + "?" + next

	default:
		ref, err := url.Parse(next)
		if err != nil {
			return "", false
		}
		resolved = cur.ResolveReference(ref).String()
	}

	resolved = collapseDoubleSlashes(resolved)

	if _, err := url.Parse(resolved); err != nil {
		return "", false
	}

	if resolved == currentURL {
		return "", false
	}

	return resolved, true
}
