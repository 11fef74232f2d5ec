// Package filter holds the pure predicates that decide whether a URL is
// worth fetching and whether a fetched file is worth keeping.
package filter

import (
	"net/url"
	"path"
	"strings"

	"github.com/tanq16/filescooper/internal/utils"
)

// Skip reasons shown to the user and written to the log.
const (
	ReasonNotAllowedType  = "not allowed type"
	ReasonSizeOutOfBounds = "size out of bounds"
)

// AllowedType reports whether the URL's path extension is in the allowed
// set. The wildcard set {"*"} passes everything; URLs without an extension
// fail unless the wildcard is set. Matching is case-insensitive and runs
// on the requested URL, not any redirect target.
func AllowedType(rawURL string, allowed map[string]struct{}) bool {
	if _, ok := allowed["*"]; ok {
		return true
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(path.Base(parsed.Path))), ".")
	if ext == "" {
		return false
	}
	_, ok := allowed[ext]
	return ok
}

// WithinBounds reports whether size satisfies the configured min/max
// limits. Unset limits (zero) always pass.
func WithinBounds(size int64, bounds utils.SizeBounds) bool {
	if bounds.Min > 0 && size < bounds.Min {
		return false
	}
	if bounds.Max > 0 && size > bounds.Max {
		return false
	}
	return true
}
