package middleware

import (
	"net/http"

	"github.com/admin-harmiana/Website/internal/i18n"
	"github.com/admin-harmiana/Website/internal/locale"
)

// Locale resolves the language from the first path segment and stores the
// matching translator in the request context. Unsupported segments resolve to
// the default locale; the page router decides whether they render.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var first string
			if segs := locale.Segments(r.URL.Path); len(segs) > 0 {
				first = segs[0]
			}
			l := locale.Resolve(first)
			tr := bundle.Translator(l)
			w.Header().Set("Content-Language", l.String())
			next.ServeHTTP(w, r.WithContext(i18n.WithTranslator(r.Context(), tr)))
		})
	}
}
