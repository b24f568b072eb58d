package handlers

import (
	"github.com/admin-harmiana/Website/internal/nav"
	"github.com/admin-harmiana/Website/internal/seo"
	"github.com/admin-harmiana/Website/internal/shell"
)

// ArticleData is the view model for the privacy, terms and about pages.
type ArticleData struct {
	Key         string
	Title       string
	Paragraphs  []string // markdown
	Breadcrumbs []nav.Crumb
	ListTitle   string
	List        []string
}

// BuildArticleData builds a long-form page from "<key>.title", "<key>.body1"
// and "<key>.body2". About also carries the beliefs list.
func BuildArticleData(tr Lookup, key string) ArticleData {
	a := ArticleData{
		Key:         key,
		Title:       tr.T(key + ".title"),
		Paragraphs:  []string{tr.T(key + ".body1"), tr.T(key + ".body2")},
		Breadcrumbs: nav.Breadcrumbs(tr.Lang(), key, tr.T),
	}
	if key == "about" {
		a.ListTitle = tr.T("about.beliefsTitle")
		a.List = tr.List("about.beliefs")
	}
	return a
}

// PageData is the model the base template executes with.
type PageData struct {
	shell.View
	SEO seo.Meta
}
