// Package site renders pages of the website from the embedded templates.
// The HTTP server and the static export share it.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/admin-harmiana/Website/internal/handlers"
	"github.com/admin-harmiana/Website/internal/i18n"
	"github.com/admin-harmiana/Website/internal/locale"
	"github.com/admin-harmiana/Website/internal/markdown"
	"github.com/admin-harmiana/Website/internal/reveal"
	"github.com/admin-harmiana/Website/internal/router"
	"github.com/admin-harmiana/Website/internal/seo"
	"github.com/admin-harmiana/Website/internal/shell"
	"github.com/admin-harmiana/Website/templates"
)

// Options configures New.
type Options struct {
	Bundle       *i18n.Bundle
	BaseURL      string
	ContactEmail string
	// TemplatesDir, when set, is reparsed from disk on every render (dev mode).
	TemplatesDir string
	Now          func() time.Time
}

// Site renders pages. It is safe for concurrent use.
type Site struct {
	opts  Options
	md    *markdown.Renderer
	cache *template.Template
}

// New parses the templates once unless a dev templates directory is set.
func New(opts Options) (*Site, error) {
	if opts.Bundle == nil {
		return nil, fmt.Errorf("site: translation bundle is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Site{opts: opts, md: markdown.New()}
	tc, err := s.parseTemplates()
	if err != nil {
		return nil, err
	}
	if opts.TemplatesDir == "" {
		s.cache = tc
	}
	return s, nil
}

// Bundle returns the translation bundle pages are rendered with.
func (s *Site) Bundle() *i18n.Bundle { return s.opts.Bundle }

// BaseURL returns the public origin of the site.
func (s *Site) BaseURL() string { return s.opts.BaseURL }

func (s *Site) templateFS() fs.FS {
	if s.opts.TemplatesDir != "" {
		return os.DirFS(s.opts.TemplatesDir)
	}
	return templates.FS()
}

func (s *Site) parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"markdown": s.md.Render,
		"reveal":   reveal.Attrs,
		"jsonld":   func(v string) template.JS { return template.JS(v) },
	}
	fsys := s.templateFS()
	// ParseFS globs don't recurse, so collect the files ourselves.
	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	t, err := template.New("_root").Funcs(funcMap).ParseFS(fsys, files...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

func (s *Site) templates() (*template.Template, error) {
	if s.cache != nil {
		return s.cache, nil
	}
	return s.parseTemplates()
}

// NewShell mounts a layout shell for route.
func (s *Site) NewShell(route router.Route) *shell.Shell {
	return shell.New(route.Path, route.Locale, shell.Options{
		LogoSrc:      handlers.LogoSrc,
		ContactEmail: s.opts.ContactEmail,
		Now:          s.opts.Now,
	})
}

// Page builds the view model of route. tr is the current-language setting and
// must be bound to route.Locale; a mismatched translator is rebound.
func (s *Site) Page(tr i18n.Translator, route router.Route, sh *shell.Shell) handlers.PageData {
	if tr.Lang() != route.Locale {
		tr = s.opts.Bundle.Translator(route.Locale)
	}
	siteName := tr.T("brand.name")
	meta := seo.Page{
		BaseURL:  s.opts.BaseURL,
		Path:     route.Path,
		Locale:   route.Locale,
		SiteName: siteName,
		Image:    handlers.ShowcaseTideSrc,
	}

	var body any
	var jsonld []string
	switch route.Page {
	case router.Home:
		body = handlers.BuildHomeData(tr)
		meta.Title = siteName
		meta.Description = tr.T("seo.home.description")
		jsonld = append(jsonld,
			seo.JSON(seo.Organization(siteName, seo.Absolute(s.opts.BaseURL, "/"), seo.Absolute(s.opts.BaseURL, handlers.LogoSrc), s.opts.ContactEmail)),
			seo.JSON(seo.WebSite(siteName, seo.Absolute(s.opts.BaseURL, route.Locale.Root()), supportedTags())),
		)
	default:
		key := string(route.Page)
		article := handlers.BuildArticleData(tr, key)
		body = article
		meta.Title = article.Title
		meta.Description = tr.T("seo." + key + ".description")
		items := make([]seo.BreadcrumbItem, 0, len(article.Breadcrumbs))
		for _, c := range article.Breadcrumbs {
			items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: seo.Absolute(s.opts.BaseURL, c.Path)})
		}
		jsonld = append(jsonld, seo.JSON(seo.BreadcrumbList(items)))
	}

	m := seo.Build(meta)
	m.JSONLD = jsonld
	return handlers.PageData{
		View: sh.Compose(tr, route.Page, body),
		SEO:  m,
	}
}

// Render writes the page for route. The page is buffered so a template error
// never produces a partial response.
func (s *Site) Render(w io.Writer, tr i18n.Translator, route router.Route, sh *shell.Shell) error {
	return s.execute(w, "base", s.Page(tr, route, sh))
}

// RedirectData is the model of the static redirect page.
type RedirectData struct {
	Lang    locale.Locale
	To      string
	Message string
}

// RenderRedirect writes a page that replaces itself with to, for static hosts
// that cannot answer with a redirect status.
func (s *Site) RenderRedirect(w io.Writer, to string) error {
	tr := s.opts.Bundle.Translator(locale.Default)
	return s.execute(w, "redirect", RedirectData{Lang: tr.Lang(), To: to, Message: tr.T("redirect.message")})
}

// Sitemap renders sitemap.xml for every page.
func (s *Site) Sitemap() ([]byte, error) {
	return seo.Sitemap(s.opts.BaseURL, router.Paths())
}

// Robots renders robots.txt.
func (s *Site) Robots() []byte {
	return seo.Robots(s.opts.BaseURL)
}

func (s *Site) execute(w io.Writer, name string, data any) error {
	t, err := s.templates()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func supportedTags() []string {
	out := make([]string, 0, len(locale.Supported()))
	for _, l := range locale.Supported() {
		out = append(out, l.Tag().String())
	}
	return out
}
