package engine

import (
	"path"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Directories that are never cleaned, no matter what matches inside
// them: version-control metadata and vendored third-party trees.
var defaultWhitelistDirs = []string{".git", ".mgit", "third-party"}

// DefaultWhitelistDirs returns a copy of the built-in whitelist.
func DefaultWhitelistDirs() []string {
	return append([]string(nil), defaultWhitelistDirs...)
}

// Whitelist is a fixed set of protected directory base-names.
type Whitelist map[string]bool

// NewWhitelist builds the whitelist from the defaults plus user additions.
func NewWhitelist(extra []string) Whitelist {
	wl := make(Whitelist, len(defaultWhitelistDirs)+len(extra))
	for _, d := range defaultWhitelistDirs {
		wl[d] = true
	}
	for _, d := range extra {
		if d = strings.TrimSpace(d); d != "" {
			wl[d] = true
		}
	}
	return wl
}

// Names returns the whitelist entries in sorted order for display.
func (wl Whitelist) Names() []string {
	out := make([]string, 0, len(wl))
	for d := range wl {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Excluded reports whether any whitelisted name appears as a complete
// path segment of rel. Segment equality only: "my.git.bak" does not
// trip the ".git" entry.
func (wl Whitelist) Excluded(rel string) bool {
	if rel == "" || rel == "." {
		return false
	}
	for _, seg := range strings.Split(rel, "/") {
		if wl[seg] {
			return true
		}
	}
	return false
}

// excludedByPatterns applies the user-supplied exclusion patterns as a
// final veto, independent of the whitelist. A pattern without wildcards
// vetoes entries whose base name equals it or whose path contains it as
// a segment; wildcard patterns glob against the base name and the whole
// relative path.
func excludedByPatterns(rel string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	base := path.Base(rel)
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if !strings.ContainsAny(p, "*?[") {
			if base == p || strings.Contains("/"+rel+"/", "/"+p+"/") {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
