package i18n

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/admin-harmiana/Website/internal/locale"
)

func TestDefaultBundleTranslatesBothLocales(t *testing.T) {
	t.Parallel()

	b, err := Default()
	require.NoError(t, err)

	require.Equal(t, "Privacy", b.T(locale.English, "nav.privacy"))
	require.Equal(t, "Confidentialité", b.T(locale.French, "nav.privacy"))
	require.Equal(t, locale.English, b.Fallback())
}

func TestDefaultBundleHasEveryNavKey(t *testing.T) {
	t.Parallel()

	b, err := Default()
	require.NoError(t, err)

	for _, l := range locale.Supported() {
		for _, key := range []string{"nav.home", "nav.privacy", "nav.terms", "nav.about", "lang.en", "lang.fr"} {
			require.NotEqual(t, key, b.T(l, key), "missing %s in %s", key, l)
		}
		require.NotEmpty(t, b.List(l, "home.values"), "home.values in %s", l)
		require.NotEmpty(t, b.List(l, "about.beliefs"), "about.beliefs in %s", l)
	}
}

func TestMissingKeyFallsBackToDefaultThenKey(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"loc/en.yaml": {Data: []byte("only:\n  english: Hello\nlist:\n  - a\n  - b\n")},
		"loc/fr.yaml": {Data: []byte("other: Bonjour\n")},
	}
	b, err := Load(fsys, "loc")
	require.NoError(t, err)

	require.Equal(t, "Hello", b.T(locale.French, "only.english"))
	require.Equal(t, "Bonjour", b.T(locale.French, "other"))
	require.Equal(t, "does.not.exist", b.T(locale.French, "does.not.exist"))
	require.Equal(t, []string{"a", "b"}, b.List(locale.French, "list"))
	require.Nil(t, b.List(locale.English, "nope"))
}

func TestFallbackKeepsTemplateData(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"loc/en.yaml": {Data: []byte("nav:\n  about: About\ncopy: \"© {{.Year}} Harmiana\"\n")},
		"loc/fr.yaml": {Data: []byte("nav:\n  home: Accueil\n")},
	}
	b, err := Load(fsys, "loc")
	require.NoError(t, err)

	require.Equal(t, "About", b.T(locale.French, "nav.about"))
	require.Equal(t, "Accueil", b.T(locale.French, "nav.home"))
	require.Equal(t, "nav.home", b.T(locale.English, "nav.home"))
	require.Equal(t, "© 2026 Harmiana", b.TWith(locale.French, "copy", map[string]any{"Year": 2026}))
	require.Equal(t, "About", b.Translator(locale.French).T("nav.about"))
}

func TestBlankValueRendersNothing(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"loc/en.yaml": {Data: []byte("empty: \"\"\nmissing:\n")},
	}
	b, err := Load(fsys, "loc")
	require.NoError(t, err)

	require.Equal(t, "", b.T(locale.English, "empty"))
	require.Equal(t, "", b.T(locale.French, "missing"))
}

func TestTemplateData(t *testing.T) {
	t.Parallel()

	b, err := Default()
	require.NoError(t, err)

	got := b.TWith(locale.French, "footer.copy", map[string]any{"Year": 2026})
	require.Contains(t, got, "2026")
	require.Contains(t, got, "Tous droits réservés")
}

func TestUnsupportedLocaleUsesDefault(t *testing.T) {
	t.Parallel()

	b, err := Default()
	require.NoError(t, err)

	tr := b.Translator("xx")
	require.Equal(t, locale.English, tr.Lang())
	require.Equal(t, "Home", tr.T("nav.home"))
}

func TestListIsCopied(t *testing.T) {
	t.Parallel()

	b, err := Default()
	require.NoError(t, err)

	l := b.List(locale.English, "home.values")
	l[0] = "changed"
	require.NotEqual(t, "changed", b.List(locale.English, "home.values")[0])
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(fstest.MapFS{"loc/fr.yaml": {Data: []byte("a: b\n")}}, "loc")
	require.ErrorContains(t, err, "load locale en")

	_, err = Load(fstest.MapFS{"loc/en.yaml": {Data: []byte("a: [b\n")}}, "loc")
	require.Error(t, err)

	_, err = Load(fstest.MapFS{"loc/en.yaml": {Data: []byte("a:\n  - {b: c}\n")}}, "loc")
	require.ErrorContains(t, err, "list items must be scalars")
}

func TestZeroTranslatorReturnsKeys(t *testing.T) {
	t.Parallel()

	var tr Translator
	require.Equal(t, "nav.home", tr.T("nav.home"))
	require.Nil(t, tr.List("home.values"))
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	b, err := Default()
	require.NoError(t, err)

	_, ok := FromContext(context.Background())
	require.False(t, ok)

	ctx := WithTranslator(context.Background(), b.Translator(locale.French))
	tr, ok := FromContext(ctx)
	require.True(t, ok)
	require.Equal(t, locale.French, tr.Lang())
}
