// Package shell composes the page chrome (header, body region, footer) and
// owns the mobile menu toggle.
package shell

import (
	"net/url"
	"time"

	"github.com/admin-harmiana/Website/internal/locale"
	"github.com/admin-harmiana/Website/internal/nav"
	"github.com/admin-harmiana/Website/internal/router"
)

// MenuParam is the query parameter that opens the menu without scripts.
const (
	MenuParam     = "menu"
	MenuOpenValue = "open"
	MenuID        = "mobile-menu"
)

// Translator is the lookup the shell renders labels with.
type Translator interface {
	Lang() locale.Locale
	T(key string) string
	TWith(key string, data map[string]any) string
}

// RouteSource notifies route changes, e.g. *router.History.
type RouteSource interface {
	Subscribe(fn func(router.Change)) (cancel func())
}

// Options carries the static branding of the layout.
type Options struct {
	LogoSrc      string
	ContactEmail string
	Now          func() time.Time
}

// Shell is one mounted layout. Its state is mutated only through its own
// methods and it is not safe for concurrent use.
type Shell struct {
	opts     Options
	path     string
	lang     locale.Locale
	menuOpen bool
	cancel   func()
}

// New mounts a shell at path with the resolved locale.
func New(path string, l locale.Locale, opts Options) *Shell {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Shell{opts: opts, path: path, lang: l}
}

// Path returns the path the shell is showing.
func (s *Shell) Path() string { return s.path }

// Lang returns the locale the shell is showing.
func (s *Shell) Lang() locale.Locale { return s.lang }

// MenuOpen reports whether the mobile menu is open.
func (s *Shell) MenuOpen() bool { return s.menuOpen }

// ToggleMenu flips the mobile menu.
func (s *Shell) ToggleMenu() { s.menuOpen = !s.menuOpen }

// HandleRouteChange adopts the new route and closes the menu when the path
// changed. Navigating to the current path leaves the menu alone.
func (s *Shell) HandleRouteChange(c router.Change) {
	if c.To == s.path {
		return
	}
	s.path = c.To
	s.lang = c.Route.Locale
	s.menuOpen = false
}

// Listen subscribes the shell to src. A previous subscription is cancelled.
func (s *Shell) Listen(src RouteSource) {
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = src.Subscribe(s.HandleRouteChange)
}

// Close unmounts the shell: it stops listening and drops its state.
func (s *Shell) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.menuOpen = false
}

// Brand is the header and footer brand link.
type Brand struct {
	Name    string
	Href    string
	LogoSrc string
	LogoAlt string
}

// Menu is the mobile menu toggle.
type Menu struct {
	ID    string
	Open  bool
	Href  string // toggles the menu without scripts
	Label string
}

// Footer is the page footer.
type Footer struct {
	Brand        Brand
	Tagline      string
	Copyright    string
	Nav          []nav.Entry
	ContactLabel string
	ContactHref  string
}

// View is the layout view model handed to templates.
type View struct {
	Lang        locale.Locale
	Path        string
	Page        router.Page
	Brand       Brand
	Nav         []nav.Entry
	Locales     []nav.LocaleLink
	LocaleLabel string
	Menu        Menu
	Footer      Footer
	Body        any
}

// Compose builds the layout around body. tr must already be bound to the
// shell locale; the caller selects it before composing anything.
func (s *Shell) Compose(tr Translator, page router.Page, body any) View {
	l := tr.Lang()
	entries := nav.MarkActive(nav.Build(l, tr.T), s.path)
	brand := Brand{
		Name:    tr.T("brand.name"),
		Href:    l.Root(),
		LogoSrc: s.opts.LogoSrc,
		LogoAlt: tr.T("brand.logoAlt"),
	}

	menu := Menu{ID: MenuID, Open: s.menuOpen, Href: s.menuHref()}
	if s.menuOpen {
		menu.Label = tr.T("menu.close")
	} else {
		menu.Label = tr.T("menu.open")
	}

	footer := Footer{
		Brand:        brand,
		Tagline:      tr.T("footer.tagline"),
		Copyright:    tr.TWith("footer.copy", map[string]any{"Year": s.opts.Now().Year()}),
		Nav:          entries,
		ContactLabel: tr.T("footer.contact"),
	}
	if s.opts.ContactEmail != "" {
		footer.ContactHref = "mailto:" + s.opts.ContactEmail
	}

	return View{
		Lang:        l,
		Path:        s.path,
		Page:        page,
		Brand:       brand,
		Nav:         entries,
		Locales:     nav.Switcher(s.path, l, tr.T),
		LocaleLabel: tr.T("lang.label"),
		Menu:        menu,
		Footer:      footer,
		Body:        body,
	}
}

func (s *Shell) menuHref() string {
	if s.menuOpen {
		return s.path
	}
	q := url.Values{MenuParam: []string{MenuOpenValue}}
	return s.path + "?" + q.Encode()
}
