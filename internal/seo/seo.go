// Package seo builds head metadata, sitemaps and robots.txt for the site.
package seo

import (
	"strings"

	"github.com/admin-harmiana/Website/internal/locale"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Image string
}

// Alternate is one hreflang link.
type Alternate struct {
	Href     string
	Hreflang string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Alternates  []Alternate
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Page describes what the renderer knows about the page being built.
type Page struct {
	BaseURL     string
	Path        string // route path actually requested, e.g. "/xx"
	Locale      locale.Locale
	SiteName    string
	Title       string
	Description string
	Image       string // absolute or site-relative
}

// Build returns the head metadata of p. The canonical URL uses the resolved
// locale, so "/xx" is canonicalised to "/en".
func Build(p Page) Meta {
	canonicalPath := locale.Rewrite(p.Path, p.Locale)
	title := p.Title
	if p.SiteName != "" && title != p.SiteName {
		title = p.Title + " | " + p.SiteName
	}
	m := Meta{
		Title:       title,
		Description: p.Description,
		Canonical:   Absolute(p.BaseURL, canonicalPath),
		Alternates:  Alternates(p.BaseURL, canonicalPath),
	}
	m.OG = OpenGraph{
		Title:       title,
		Description: p.Description,
		Image:       Absolute(p.BaseURL, p.Image),
		Type:        "website",
		URL:         m.Canonical,
		SiteName:    p.SiteName,
		Locale:      ogLocale(p.Locale),
	}
	m.Twitter = Twitter{Card: "summary_large_image", Image: m.OG.Image}
	return m
}

// Alternates returns an hreflang link per supported locale plus x-default.
func Alternates(baseURL, path string) []Alternate {
	out := make([]Alternate, 0, len(locale.Supported())+1)
	for _, l := range locale.Supported() {
		out = append(out, Alternate{Href: Absolute(baseURL, locale.Rewrite(path, l)), Hreflang: string(l)})
	}
	out = append(out, Alternate{Href: Absolute(baseURL, locale.Rewrite(path, locale.Default)), Hreflang: "x-default"})
	return out
}

// Absolute joins a site-relative path onto baseURL. Absolute URLs and empty
// paths are returned unchanged.
func Absolute(baseURL, path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func ogLocale(l locale.Locale) string {
	switch l {
	case locale.French:
		return "fr_FR"
	default:
		return "en_US"
	}
}
