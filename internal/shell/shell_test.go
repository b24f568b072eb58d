package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/admin-harmiana/Website/internal/i18n"
	"github.com/admin-harmiana/Website/internal/locale"
	"github.com/admin-harmiana/Website/internal/router"
)

func fixedNow() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

func newTranslator(t *testing.T, l locale.Locale) i18n.Translator {
	t.Helper()
	b, err := i18n.Default()
	require.NoError(t, err)
	return b.Translator(l)
}

func TestToggleThenNavigateClosesMenu(t *testing.T) {
	t.Parallel()

	h := router.NewHistory()
	route := h.Navigate("/en")
	s := New(h.Current(), route.Locale, Options{})
	s.Listen(h)

	s.ToggleMenu()
	require.True(t, s.MenuOpen())

	h.Navigate("/fr/about")
	require.False(t, s.MenuOpen())
	require.Equal(t, "/fr/about", s.Path())
	require.Equal(t, locale.French, s.Lang())
}

func TestNavigateToSamePathKeepsMenu(t *testing.T) {
	t.Parallel()

	h := router.NewHistory()
	h.Navigate("/en/terms")
	s := New(h.Current(), locale.English, Options{})
	s.Listen(h)

	s.ToggleMenu()
	h.Navigate("/en/terms")
	require.True(t, s.MenuOpen())
}

func TestRedirectClosesMenu(t *testing.T) {
	t.Parallel()

	h := router.NewHistory()
	h.Navigate("/fr/privacy")
	s := New(h.Current(), locale.French, Options{})
	s.Listen(h)

	s.ToggleMenu()
	h.Navigate("/nowhere/at/all")
	require.False(t, s.MenuOpen())
	require.Equal(t, "/en", s.Path())
}

func TestCloseStopsListening(t *testing.T) {
	t.Parallel()

	h := router.NewHistory()
	h.Navigate("/en")
	s := New("/en", locale.English, Options{})
	s.Listen(h)
	s.ToggleMenu()

	s.Close()
	require.False(t, s.MenuOpen())

	h.Navigate("/fr")
	require.Equal(t, "/en", s.Path(), "closed shell must not observe navigation")
}

func TestListenTwiceKeepsOneSubscription(t *testing.T) {
	t.Parallel()

	h := router.NewHistory()
	s := New("/en", locale.English, Options{})
	s.Listen(h)
	s.Listen(h)

	calls := 0
	h.Subscribe(func(router.Change) { calls++ })
	h.Navigate("/en/about")
	require.Equal(t, 1, calls)
	require.Equal(t, "/en/about", s.Path())
}

func TestComposeHeaderAndFooter(t *testing.T) {
	t.Parallel()

	s := New("/fr/about", locale.French, Options{
		LogoSrc:      "/assets/img/harmiana-logo.svg",
		ContactEmail: "contact@harmiana.com",
		Now:          fixedNow,
	})
	v := s.Compose(newTranslator(t, locale.French), router.About, "body")

	require.Equal(t, locale.French, v.Lang)
	require.Equal(t, "/fr", v.Brand.Href)
	require.Equal(t, "Harmiana", v.Brand.Name)
	require.Equal(t, "/assets/img/harmiana-logo.svg", v.Brand.LogoSrc)
	require.Equal(t, "body", v.Body)
	require.Equal(t, router.About, v.Page)

	require.Len(t, v.Nav, 4)
	require.Equal(t, "À propos", v.Nav[3].Label)
	require.True(t, v.Nav[3].Active)
	require.False(t, v.Nav[0].Active)

	require.Len(t, v.Locales, 2)
	require.Equal(t, "/en/about", v.Locales[0].Path)
	require.False(t, v.Locales[0].Current)
	require.Equal(t, "/fr/about", v.Locales[1].Path)
	require.True(t, v.Locales[1].Current)

	require.Equal(t, v.Nav, v.Footer.Nav)
	require.Contains(t, v.Footer.Copyright, "2026")
	require.Equal(t, "mailto:contact@harmiana.com", v.Footer.ContactHref)
	require.Equal(t, "Nous contacter", v.Footer.ContactLabel)
}

func TestComposeMenuToggleLink(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t, locale.English)
	s := New("/en/terms", locale.English, Options{Now: fixedNow})

	closed := s.Compose(tr, router.Terms, nil)
	require.False(t, closed.Menu.Open)
	require.Equal(t, "/en/terms?menu=open", closed.Menu.Href)
	require.Equal(t, "Open menu", closed.Menu.Label)
	require.Equal(t, MenuID, closed.Menu.ID)

	s.ToggleMenu()
	open := s.Compose(tr, router.Terms, nil)
	require.True(t, open.Menu.Open)
	require.Equal(t, "/en/terms", open.Menu.Href)
	require.Equal(t, "Close menu", open.Menu.Label)
	for _, e := range open.Nav {
		require.NotContains(t, e.Path, "menu=")
	}
}

func TestComposeWithoutContact(t *testing.T) {
	t.Parallel()

	s := New("/en", locale.English, Options{Now: fixedNow})
	v := s.Compose(newTranslator(t, locale.English), router.Home, nil)
	require.Empty(t, v.Footer.ContactHref)
}
