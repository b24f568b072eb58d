package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc   string        `xml:"loc"`
	Links []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Sitemap renders a sitemap for paths with hreflang alternates per entry.
func Sitemap(baseURL string, paths []string) ([]byte, error) {
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, p := range paths {
		u := sitemapURL{Loc: Absolute(baseURL, p)}
		for _, alt := range Alternates(baseURL, p) {
			u.Links = append(u.Links, sitemapLink{Rel: "alternate", Hreflang: alt.Hreflang, Href: alt.Href})
		}
		set.URLs = append(set.URLs, u)
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// Robots allows everything and points crawlers at the sitemap.
func Robots(baseURL string) []byte {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	if baseURL != "" {
		b.WriteString("Sitemap: " + Absolute(baseURL, "/sitemap.xml") + "\n")
	}
	return []byte(b.String())
}
