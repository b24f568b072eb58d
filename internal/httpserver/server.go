package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/admin-harmiana/Website/internal/i18n"
	custommw "github.com/admin-harmiana/Website/internal/middleware"
	"github.com/admin-harmiana/Website/internal/router"
	"github.com/admin-harmiana/Website/internal/shell"
	"github.com/admin-harmiana/Website/internal/site"
	"github.com/admin-harmiana/Website/public"
)

// Config holds runtime options for the website HTTP server.
type Config struct {
	Address        string
	Site           *site.Site
	Logger         *slog.Logger
	RequestTimeout time.Duration
	// Metrics exposes /metrics when true. Registry defaults to a fresh
	// registry with the Go and process collectors.
	Metrics  bool
	Registry *prometheus.Registry
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	h, err := Handler(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

// Handler builds the router New serves.
func Handler(cfg Config) (http.Handler, error) {
	if cfg.Site == nil {
		return nil, fmt.Errorf("httpserver: site is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	var metrics *custommw.Metrics
	reg := cfg.Registry
	if cfg.Metrics {
		if reg == nil {
			reg = prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		}
		metrics = custommw.NewMetrics(reg)
	}

	assets, err := public.AssetsFS()
	if err != nil {
		return nil, fmt.Errorf("embed assets: %w", err)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(custommw.Logger(logger))
	r.Use(chimw.Recoverer)
	if metrics != nil {
		r.Use(metrics.Handler)
	}
	r.Use(chimw.StripSlashes)
	r.Use(chimw.GetHead)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(timeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	r.Handle("/assets/*", http.StripPrefix("/assets", custommw.AssetsWithCache(assets)))
	r.Get("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(cfg.Site.Robots())
	})
	r.Get("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		b, err := cfg.Site.Sitemap()
		if err != nil {
			logger.ErrorContext(r.Context(), "render sitemap", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write(b)
	})

	pages := &pageHandler{site: cfg.Site, logger: logger, metrics: metrics}
	r.Group(func(r chi.Router) {
		r.Use(custommw.Locale(cfg.Site.Bundle()))
		r.Get("/", pages.ServeHTTP)
		r.Get("/{lang}", pages.ServeHTTP)
		r.Get("/{lang}/{page}", pages.ServeHTTP)
	})
	// Any other path is not a page of the site.
	r.NotFound(pages.ServeHTTP)
	r.MethodNotAllowed(pages.methodNotAllowed)

	return r, nil
}

type pageHandler struct {
	site    *site.Site
	logger  *slog.Logger
	metrics *custommw.Metrics
}

// methodNotAllowed redirects unknown paths whatever the method; real pages
// only answer GET and HEAD.
func (h *pageHandler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if res := router.Match(r.URL.Path); res.IsRedirect() {
		h.metrics.Redirect(res.Redirect)
		http.Redirect(w, r, res.Redirect, http.StatusFound)
		return
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := router.Match(r.URL.Path)
	if res.IsRedirect() {
		h.metrics.Redirect(res.Redirect)
		http.Redirect(w, r, res.Redirect, http.StatusFound)
		return
	}

	tr, ok := i18n.FromContext(r.Context())
	if !ok {
		tr = h.site.Bundle().Translator(res.Route.Locale)
	}
	sh := h.site.NewShell(res.Route)
	defer sh.Close()
	if r.URL.Query().Get(shell.MenuParam) == shell.MenuOpenValue {
		sh.ToggleMenu()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.site.Render(w, tr, res.Route, sh); err != nil {
		h.logger.ErrorContext(r.Context(), "render page", slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
