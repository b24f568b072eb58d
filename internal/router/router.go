// Package router maps URL paths to pages and models client navigation
// history, where redirects replace the current entry.
package router

import (
	"strings"

	"github.com/admin-harmiana/Website/internal/locale"
)

// Page identifies a screen rendered inside the locale layout.
type Page string

const (
	Home    Page = "home"
	Privacy Page = "privacy"
	Terms   Page = "terms"
	About   Page = "about"
)

// DefaultRoot is the target of every redirect.
var DefaultRoot = locale.Default.Root()

var subpages = map[string]Page{
	string(Privacy): Privacy,
	string(Terms):   Terms,
	string(About):   About,
}

// Pages returns every page in navigation order.
func Pages() []Page { return []Page{Home, Privacy, Terms, About} }

// Route is a matched screen.
type Route struct {
	Page    Page
	Segment string        // raw first path segment
	Locale  locale.Locale // Segment after resolution
	Path    string        // cleaned path, e.g. "/fr/about"
}

// Result is the outcome of Match: either a Route or a redirect target.
type Result struct {
	Route    Route
	Redirect string
}

// IsRedirect reports whether the path must be replaced by Redirect.
func (r Result) IsRedirect() bool { return r.Redirect != "" }

// Match resolves path against the supported URL shapes:
//
//	/                        redirect to /en
//	/{any}                   Home
//	/{locale}/{subpage}      subpage, locale must be supported
//	anything else            redirect to /en
func Match(path string) Result {
	segs := locale.Segments(path)
	switch len(segs) {
	case 0:
		return Result{Redirect: DefaultRoot}
	case 1:
		return Result{Route: newRoute(Home, segs)}
	case 2:
		page, ok := subpages[segs[1]]
		if ok && locale.IsSupported(segs[0]) {
			return Result{Route: newRoute(page, segs)}
		}
	}
	return Result{Redirect: DefaultRoot}
}

func newRoute(p Page, segs []string) Route {
	return Route{
		Page:    p,
		Segment: segs[0],
		Locale:  locale.Resolve(segs[0]),
		Path:    "/" + strings.Join(segs, "/"),
	}
}

// Paths lists every renderable route path, for sitemaps and static export.
func Paths() []string {
	var out []string
	for _, l := range locale.Supported() {
		for _, p := range Pages() {
			if p == Home {
				out = append(out, l.Root())
				continue
			}
			out = append(out, l.Root()+"/"+string(p))
		}
	}
	return out
}
