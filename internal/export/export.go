// Package export renders the whole site to a directory of static files.
//
// Pages are discovered by crawling links from /en through a router.History,
// with one layout shell listening for route changes the way a browser
// session would. Paths a static host cannot redirect (/ and unknown paths)
// get small pages that replace themselves with /en.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/admin-harmiana/Website/internal/locale"
	"github.com/admin-harmiana/Website/internal/router"
	"github.com/admin-harmiana/Website/internal/site"
	"github.com/admin-harmiana/Website/public"
)

// Options configures an export run.
type Options struct {
	Site   *site.Site
	OutDir string
	Logger *slog.Logger
}

// Report summarises a finished run.
type Report struct {
	Pages []string // route paths, sorted
	Files int
}

// Exporter writes the site to Options.OutDir.
type Exporter struct {
	opts  Options
	files int
}

// New validates opts.
func New(opts Options) (*Exporter, error) {
	if opts.Site == nil {
		return nil, fmt.Errorf("export: site is required")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("export: output directory is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Exporter{opts: opts}, nil
}

// Run crawls and writes every page, the redirect stubs, the crawler files
// and the static assets.
func (e *Exporter) Run(ctx context.Context) (Report, error) {
	e.files = 0
	if err := os.MkdirAll(e.opts.OutDir, 0o755); err != nil {
		return Report{}, fmt.Errorf("create output dir: %w", err)
	}

	pages, err := e.crawl(ctx)
	if err != nil {
		return Report{}, err
	}

	for _, name := range []string{"index.html", "404.html"} {
		var buf bytes.Buffer
		if err := e.opts.Site.RenderRedirect(&buf, router.DefaultRoot); err != nil {
			return Report{}, fmt.Errorf("render %s: %w", name, err)
		}
		if err := e.write(name, buf.Bytes()); err != nil {
			return Report{}, err
		}
	}

	sitemap, err := e.opts.Site.Sitemap()
	if err != nil {
		return Report{}, err
	}
	if err := e.write("sitemap.xml", sitemap); err != nil {
		return Report{}, err
	}
	if err := e.write("robots.txt", e.opts.Site.Robots()); err != nil {
		return Report{}, err
	}

	if err := e.copyAssets(); err != nil {
		return Report{}, err
	}

	e.opts.Logger.InfoContext(ctx, "export finished",
		slog.String("out", e.opts.OutDir),
		slog.Int("pages", len(pages)),
		slog.Int("files", e.files),
	)
	return Report{Pages: pages, Files: e.files}, nil
}

func (e *Exporter) crawl(ctx context.Context) ([]string, error) {
	s := e.opts.Site
	history := router.NewHistory()
	start := router.Match(router.DefaultRoot).Route
	sh := s.NewShell(start)
	sh.Listen(history)
	defer sh.Close()

	// Start where a visitor would and seed the known paths so an unlinked
	// page is still exported.
	queue := append([]string{"/"}, router.Paths()...)
	seen := map[string]bool{}
	var done []string

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := queue[0]
		queue = queue[1:]
		if seen[next] {
			continue
		}
		seen[next] = true

		route := history.Navigate(next)
		if route.Path != next {
			// Redirected. The target is rendered under its own path.
			if !seen[route.Path] {
				queue = append([]string{route.Path}, queue...)
			}
			continue
		}

		var buf bytes.Buffer
		tr := s.Bundle().Translator(route.Locale)
		if err := s.Render(&buf, tr, route, sh); err != nil {
			return nil, fmt.Errorf("render %s: %w", route.Path, err)
		}
		if err := e.write(filepath.Join(strings.TrimPrefix(route.Path, "/"), "index.html"), buf.Bytes()); err != nil {
			return nil, err
		}
		done = append(done, route.Path)
		e.opts.Logger.DebugContext(ctx, "exported page", slog.String("path", route.Path))

		links, err := Links(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", route.Path, err)
		}
		for _, l := range links {
			if !seen[l] && exportable(l) {
				queue = append(queue, l)
			}
		}
	}
	sort.Strings(done)
	return done, nil
}

// exportable reports whether p is a page with a supported locale segment.
func exportable(p string) bool {
	res := router.Match(p)
	if res.IsRedirect() {
		return false
	}
	return locale.IsSupported(res.Route.Segment) && res.Route.Path == p
}

// Links returns the distinct site-relative link targets of an HTML document,
// without query or fragment. Asset links are skipped.
func Links(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, a := range n.Attr {
				if a.Key != "href" {
					continue
				}
				if p, ok := sitePath(a.Val); ok && !seen[p] {
					seen[p] = true
					out = append(out, p)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out, nil
}

func sitePath(href string) (string, bool) {
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "", false
	}
	if strings.HasPrefix(u.Path, "/assets/") {
		return "", false
	}
	return u.Path, true
}

func (e *Exporter) copyAssets() error {
	assets, err := public.AssetsFS()
	if err != nil {
		return fmt.Errorf("embed assets: %w", err)
	}
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(assets, path)
		if err != nil {
			return err
		}
		return e.write(filepath.Join("assets", filepath.FromSlash(path)), b)
	})
}

func (e *Exporter) write(rel string, b []byte) error {
	dst := filepath.Join(e.opts.OutDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	e.files++
	return nil
}
