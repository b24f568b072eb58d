// Package nav builds the top-level navigation and the locale switcher.
package nav

import (
	"strings"

	"github.com/admin-harmiana/Website/internal/locale"
)

// Lookup resolves a translation key to display text.
type Lookup func(key string) string

// Entry is one navigation link.
type Entry struct {
	Key    string // page key, e.g. "privacy"
	Path   string // e.g. "/en/privacy"
	Label  string
	Active bool
}

// LocaleLink is one entry of the language switcher.
type LocaleLink struct {
	Locale  locale.Locale
	Path    string
	Label   string
	Current bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Path   string
	Label  string
	Active bool
}

// Keys is the fixed navigation order.
var Keys = []string{"home", "privacy", "terms", "about"}

// Path returns the route path of page key under l.
func Path(l locale.Locale, key string) string {
	if key == "home" {
		return l.Root()
	}
	return l.Root() + "/" + key
}

// Build returns the navigation entries for l in display order.
func Build(l locale.Locale, lookup Lookup) []Entry {
	entries := make([]Entry, 0, len(Keys))
	for _, key := range Keys {
		entries = append(entries, Entry{
			Key:   key,
			Path:  Path(l, key),
			Label: label(lookup, "nav."+key),
		})
	}
	return entries
}

// MarkActive flags the entries matching currentPath.
func MarkActive(entries []Entry, currentPath string) []Entry {
	current := normalize(currentPath)
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Active = isActive(e, current)
		out[i] = e
	}
	return out
}

func isActive(e Entry, current string) bool {
	if current == e.Path {
		return true
	}
	// home only matches exactly; other sections match their subtree
	if e.Key == "home" {
		return false
	}
	return strings.HasPrefix(current, e.Path+"/")
}

// Switcher returns one link per supported locale pointing at currentPath
// rewritten to that locale.
func Switcher(currentPath string, current locale.Locale, lookup Lookup) []LocaleLink {
	links := make([]LocaleLink, 0, len(locale.Supported()))
	for _, l := range locale.Supported() {
		links = append(links, LocaleLink{
			Locale:  l,
			Path:    locale.Rewrite(currentPath, l),
			Label:   label(lookup, "lang."+string(l)),
			Current: l == current,
		})
	}
	return links
}

// Breadcrumbs returns Home followed by the page, if it is not home.
func Breadcrumbs(l locale.Locale, key string, lookup Lookup) []Crumb {
	crumbs := []Crumb{{Path: Path(l, "home"), Label: label(lookup, "nav.home"), Active: key == "home"}}
	if key == "home" || key == "" {
		return crumbs
	}
	return append(crumbs, Crumb{Path: Path(l, key), Label: label(lookup, "nav."+key), Active: true})
}

func label(lookup Lookup, key string) string {
	if lookup == nil {
		return ""
	}
	return lookup(key)
}

func normalize(p string) string {
	segs := locale.Segments(p)
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/")
}
