// Package urlx holds the display and de-duplication helpers of the item
// record model: URL normalization, provider-label derivation, and
// thumbnail resolution. Every function is total — malformed input
// degrades to a defined fallback, never an error or a panic, because a
// bad URL must not fail a save or blank a card.
package urlx

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/savedit/savedit/models"
)

// NormalizeURL canonicalizes a raw URL into the per-user de-duplication
// key: scheme, host, and path are lowercased and trailing slashes are
// stripped from the path. Query and fragment are preserved as given.
//
// The function is idempotent: NormalizeURL(NormalizeURL(x)) ==
// NormalizeURL(x). On parse failure (or a URL with no scheme/host) it
// falls back to a lowercased, slash-trimmed copy of the raw input rather
// than failing the save.
//
// Note: lowercasing the path unifies case-sensitive paths on
// case-sensitive servers. Kept for compatibility with the existing
// dedup keys.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return strings.TrimRight(strings.ToLower(trimmed), "/")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimRight(strings.ToLower(u.Path), "/")
	u.RawPath = ""

	return u.String()
}

// ProviderLabel resolves the source platform label for an item: the
// explicit provider field when present, otherwise the URL's hostname
// with a leading "www." stripped. A malformed URL yields the raw URL
// string so the caller always has something to render.
func ProviderLabel(item *models.SavedItem) string {
	if item.Provider != "" {
		return item.Provider
	}
	return hostnameOrRaw(item.URL)
}

// DisplayThumbnail resolves the thumbnail to render: the mirrored copy
// takes precedence over the original. The second return value is false
// when neither is present, signalling the caller to render the
// deterministic placeholder keyed by provider domain.
func DisplayThumbnail(item *models.SavedItem) (string, bool) {
	if item.ThumbnailMirroredURL != "" {
		return item.ThumbnailMirroredURL, true
	}
	if item.ThumbnailURL != "" {
		return item.ThumbnailURL, true
	}
	return "", false
}

// FaviconURL builds the favicon-service URL for an item's provider
// domain.
func FaviconURL(item *models.SavedItem) string {
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=64", hostnameOrRaw(item.URL))
}

func hostnameOrRaw(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
