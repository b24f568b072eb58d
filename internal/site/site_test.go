package site_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/admin-harmiana/Website/internal/locale"
	"github.com/admin-harmiana/Website/internal/router"
	"github.com/admin-harmiana/Website/internal/site"
	"github.com/admin-harmiana/Website/internal/testutil"
)

func newSite(t *testing.T) *site.Site {
	t.Helper()
	return testutil.NewSite(t)
}

func render(t *testing.T, s *site.Site, path string) []byte {
	t.Helper()

	res := router.Match(path)
	require.False(t, res.IsRedirect(), "path %s should render", path)

	var buf bytes.Buffer
	tr := s.Bundle().Translator(res.Route.Locale)
	require.NoError(t, s.Render(&buf, tr, res.Route, s.NewShell(res.Route)))
	return buf.Bytes()
}

func TestNewRequiresBundle(t *testing.T) {
	t.Parallel()

	_, err := site.New(site.Options{})
	require.Error(t, err)
}

func TestRenderHomeEnglish(t *testing.T) {
	t.Parallel()

	doc := testutil.ParseHTML(t, render(t, newSite(t), "/en"))

	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "Harmiana", doc.Find("title").Text())
	require.Equal(t, "Small worlds, made with care.", strings.TrimSpace(doc.Find("h1").First().Text()))
	require.Equal(t, 3, doc.Find("section.cards article.card").Length())
	require.Equal(t, 2, doc.Find("#games figure.game").Length())
	require.Equal(t, "https://harmiana.test/en", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, 2, doc.Find(`script[type="application/ld+json"]`).Length())

	home := doc.Find(`[data-nav-desktop] a[data-nav="home"]`)
	require.Equal(t, "page", home.AttrOr("aria-current", ""))
	require.Equal(t, "© 2026 Harmiana. All rights reserved.", strings.TrimSpace(doc.Find("[data-copyright]").Text()))
	require.Equal(t, "mailto:contact@harmiana.com", doc.Find("a[data-contact]").AttrOr("href", ""))
}

func TestRenderHomeFrench(t *testing.T) {
	t.Parallel()

	doc := testutil.ParseHTML(t, render(t, newSite(t), "/fr"))

	require.Equal(t, "fr", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "De petits mondes, faits avec soin.", strings.TrimSpace(doc.Find("h1").First().Text()))
	require.Equal(t, "Accueil", strings.TrimSpace(doc.Find(`[data-nav-desktop] a[data-nav="home"]`).Text()))
	require.Equal(t, "/fr/privacy", doc.Find(`[data-nav-desktop] a[data-nav="privacy"]`).AttrOr("href", ""))
}

func TestRenderUnsupportedLocaleHome(t *testing.T) {
	t.Parallel()

	doc := testutil.ParseHTML(t, render(t, newSite(t), "/xx"))

	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "https://harmiana.test/en", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	// The switcher rewrites the segment actually shown.
	require.Equal(t, "/fr", doc.Find(`a[data-locale="fr"]`).AttrOr("href", ""))
}

func TestRenderArticle(t *testing.T) {
	t.Parallel()

	doc := testutil.ParseHTML(t, render(t, newSite(t), "/fr/privacy"))

	require.Equal(t, "Politique de confidentialité | Harmiana", doc.Find("title").Text())
	require.Equal(t, "privacy", doc.Find("article").AttrOr("data-article", ""))
	require.Equal(t, 2, doc.Find("article p").Length())
	require.Equal(t, "mailto:contact@harmiana.com", doc.Find(`article a[href^="mailto:"]`).AttrOr("href", ""))
	require.Equal(t, "/en/privacy", doc.Find(`a[data-locale="en"]`).AttrOr("href", ""))
	require.Equal(t, "/fr", doc.Find(".breadcrumbs a").First().AttrOr("href", ""))

	privacy := doc.Find(`[data-nav-desktop] a[data-nav="privacy"]`)
	require.Equal(t, "page", privacy.AttrOr("aria-current", ""))
	_, homeActive := doc.Find(`[data-nav-desktop] a[data-nav="home"]`).Attr("aria-current")
	require.False(t, homeActive)
}

func TestRenderAboutBeliefs(t *testing.T) {
	t.Parallel()

	doc := testutil.ParseHTML(t, render(t, newSite(t), "/en/about"))

	require.Equal(t, "What we believe", strings.TrimSpace(doc.Find("[data-section=beliefs] h2").Text()))
	require.Equal(t, 3, doc.Find("[data-section=beliefs] li").Length())
	require.Equal(t, "0.15", doc.Find("[data-section=beliefs]").AttrOr("data-reveal-threshold", ""))
}

func TestRenderMenuState(t *testing.T) {
	t.Parallel()

	s := newSite(t)
	route := router.Match("/en/terms").Route
	sh := s.NewShell(route)
	sh.ToggleMenu()

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf, s.Bundle().Translator(locale.English), route, sh))
	doc := testutil.ParseHTML(t, buf.Bytes())

	toggle := doc.Find("a[data-menu-toggle]")
	require.Equal(t, "true", toggle.AttrOr("aria-expanded", ""))
	require.Equal(t, "/en/terms", toggle.AttrOr("href", ""))
	_, hidden := doc.Find("nav[data-menu]").Attr("hidden")
	require.False(t, hidden)
}

func TestRenderRebindsMismatchedTranslator(t *testing.T) {
	t.Parallel()

	s := newSite(t)
	route := router.Match("/fr/about").Route

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf, s.Bundle().Translator(locale.English), route, s.NewShell(route)))
	doc := testutil.ParseHTML(t, buf.Bytes())

	require.Equal(t, "fr", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "À propos d'Harmiana", strings.TrimSpace(doc.Find("h1").Text()))
}

func TestRenderRedirect(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newSite(t).RenderRedirect(&buf, "/en"))
	doc := testutil.ParseHTML(t, buf.Bytes())

	require.Equal(t, "0; url=/en", doc.Find(`meta[http-equiv="refresh"]`).AttrOr("content", ""))
	require.Equal(t, "/en", doc.Find("body a").AttrOr("href", ""))
}

func TestSitemapAndRobots(t *testing.T) {
	t.Parallel()

	s := newSite(t)
	xml, err := s.Sitemap()
	require.NoError(t, err)
	require.Contains(t, string(xml), "<loc>https://harmiana.test/fr/terms</loc>")
	require.Equal(t, len(router.Paths()), strings.Count(string(xml), "<url>"))
	require.Contains(t, string(s.Robots()), "Sitemap: https://harmiana.test/sitemap.xml")
}
