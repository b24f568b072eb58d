// Package handlers holds the view models of the site pages.
package handlers

import (
	"strconv"

	"github.com/admin-harmiana/Website/internal/locale"
	"github.com/admin-harmiana/Website/internal/nav"
)

// Lookup is the translation view a page body is built from.
type Lookup interface {
	Lang() locale.Locale
	T(key string) string
	List(key string) []string
}

// Showcase image paths, served from the embedded assets.
const (
	LogoSrc            = "/assets/img/harmiana-logo.svg"
	ShowcaseTideSrc    = "/assets/img/showcase-tide.svg"
	ShowcaseLanternSrc = "/assets/img/showcase-lantern.svg"
)

// ShowcaseAnchor is the fragment id of the games section.
const ShowcaseAnchor = "games"

// Card is a short highlight on the home page.
type Card struct {
	Title string
	Body  string
}

// Game is one showcase entry.
type Game struct {
	Title string
	Body  string
	Image string
	Alt   string
}

// Showcase is the games section of the home page.
type Showcase struct {
	ID       string
	Title    string
	Subtitle string
	Games    []Game
}

// HomeData is the view model for the home page.
type HomeData struct {
	Tagline     string
	Title       string
	Subtitle    string
	CTA         string
	CTAHref     string
	Cards       []Card
	ValuesTitle string
	Values      []string
	Showcase    Showcase
}

// BuildHomeData constructs the home page body for the lookup locale.
func BuildHomeData(tr Lookup) HomeData {
	cards := make([]Card, 0, 3)
	for i := 1; i <= 3; i++ {
		prefix := "home.card" + strconv.Itoa(i)
		cards = append(cards, Card{Title: tr.T(prefix + ".title"), Body: tr.T(prefix + ".body")})
	}
	return HomeData{
		Tagline:     tr.T("home.tagline"),
		Title:       tr.T("home.title"),
		Subtitle:    tr.T("home.subtitle"),
		CTA:         tr.T("home.cta"),
		CTAHref:     nav.Path(tr.Lang(), "home") + "#" + ShowcaseAnchor,
		Cards:       cards,
		ValuesTitle: tr.T("home.valuesTitle"),
		Values:      tr.List("home.values"),
		Showcase: Showcase{
			ID:       ShowcaseAnchor,
			Title:    tr.T("showcase.title"),
			Subtitle: tr.T("showcase.subtitle"),
			Games: []Game{
				{Title: tr.T("showcase.game1.title"), Body: tr.T("showcase.game1.body"), Image: ShowcaseTideSrc, Alt: tr.T("showcase.game1.alt")},
				{Title: tr.T("showcase.game2.title"), Body: tr.T("showcase.game2.body"), Image: ShowcaseLanternSrc, Alt: tr.T("showcase.game2.alt")},
			},
		},
	}
}
