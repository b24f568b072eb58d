// Package locale resolves the display language from the first URL path segment
// and rewrites paths from one language to another.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a two-letter language code used as the first path segment.
type Locale string

const (
	English Locale = "en"
	French  Locale = "fr"

	// Default is used whenever a segment is absent or unsupported.
	Default = English
)

var supported = []Locale{English, French}

// Supported returns the closed set of locales in display order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether s names a supported locale exactly.
func IsSupported(s string) bool {
	for _, l := range supported {
		if string(l) == s {
			return true
		}
	}
	return false
}

// Resolve returns segment as a Locale when it is supported, otherwise Default.
func Resolve(segment string) Locale {
	if IsSupported(segment) {
		return Locale(segment)
	}
	return Default
}

func (l Locale) String() string { return string(l) }

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	switch l {
	case French:
		return language.French
	default:
		return language.English
	}
}

// Root returns the locale home path, e.g. "/fr".
func (l Locale) Root() string { return "/" + string(l) }

// Segments splits p on "/" and drops empty segments.
func Segments(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Rewrite returns currentPath with its first segment replaced by target.
// The first segment is overwritten whether or not it was a valid locale.
func Rewrite(currentPath string, target Locale) string {
	segs := Segments(currentPath)
	if len(segs) == 0 {
		return target.Root()
	}
	segs[0] = string(target)
	return "/" + strings.Join(segs, "/")
}
