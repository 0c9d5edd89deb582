package enforcement

import (
	"net/url"
	"strings"
)

// IsRedirectLoop reports whether redirecting from current to target
// would land on the same location. Callers must check this before
// issuing a redirect and render a 403 instead when it fires.
//
// Comparison is exact string equality after normalization: scheme and
// host are lowered, fragments dropped, and a single trailing slash on
// the path ignored.
func IsRedirectLoop(current, target string) bool {
	return normalizeURL(current) == normalizeURL(target)
}

// IsRedirectLoopAt is the request-side variant: it reduces an absolute
// target to its path when the target host matches the serving host, so
// a resource whose forward URL is its own absolute address still trips
// the guard. Targets on another host never loop.
func IsRedirectLoopAt(host, path, target string) bool {
	u, err := url.Parse(strings.TrimSpace(target))
	if err == nil && u.Host != "" {
		if !strings.EqualFold(u.Host, host) {
			return false
		}
		return IsRedirectLoop(path, u.Path)
	}
	return IsRedirectLoop(path, target)
}

func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		// Unparseable input: fall back to trimmed string comparison.
		return strings.TrimSuffix(raw, "/")
	}
	u.Fragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u.String()
}
