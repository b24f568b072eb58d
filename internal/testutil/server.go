package testutil

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/admin-harmiana/Website/internal/httpserver"
	"github.com/admin-harmiana/Website/internal/i18n"
	"github.com/admin-harmiana/Website/internal/site"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithRegistry enables /metrics backed by reg.
func WithRegistry(reg *prometheus.Registry) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Metrics = true
		cfg.Registry = reg
	}
}

// NewSite builds a site over the embedded translations and templates.
func NewSite(t testing.TB) *site.Site {
	t.Helper()

	bundle, err := i18n.Default()
	if err != nil {
		t.Fatalf("load translations: %v", err)
	}
	s, err := site.New(site.Options{
		Bundle:       bundle,
		BaseURL:      "https://harmiana.test",
		ContactEmail: "contact@harmiana.com",
		Now:          FixedClock(2026, 3, 1),
	})
	if err != nil {
		t.Fatalf("new site: %v", err)
	}
	return s
}

// NewServer starts the website on an httptest server closed with the test.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Site:   NewSite(t),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	h, err := httpserver.Handler(cfg)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}
