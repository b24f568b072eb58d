// Package i18n loads the site copy and answers key lookups per locale.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"gopkg.in/yaml.v3"

	"github.com/admin-harmiana/Website/internal/locale"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Bundle holds translations for every supported locale. It is read-only after
// Load and safe for concurrent use.
type Bundle struct {
	messages   *goi18n.Bundle
	localizers map[locale.Locale]*goi18n.Localizer
	lists      map[locale.Locale]map[string][]string
	blank      map[locale.Locale]map[string]struct{}
	fallback   locale.Locale
}

// Default loads the locale files embedded in the binary.
func Default() (*Bundle, error) {
	return Load(localesFS, "locales")
}

// Load reads <dir>/<locale>.yaml from fsys for every supported locale.
// A missing file is tolerated except for the default locale.
func Load(fsys fs.FS, dir string) (*Bundle, error) {
	b := &Bundle{
		messages:   goi18n.NewBundle(locale.Default.Tag()),
		localizers: map[locale.Locale]*goi18n.Localizer{},
		lists:      map[locale.Locale]map[string][]string{},
		blank:      map[locale.Locale]map[string]struct{}{},
		fallback:   locale.Default,
	}
	loaded := map[locale.Locale]bool{}
	for _, l := range locale.Supported() {
		file := path.Join(dir, string(l)+".yaml")
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			if l == b.fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		if err := b.add(l, raw); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		loaded[l] = true
	}
	if !loaded[b.fallback] {
		return nil, fmt.Errorf("fallback locale %s not loaded", b.fallback)
	}
	for _, l := range locale.Supported() {
		langs := []string{string(l)}
		if l != b.fallback {
			langs = append(langs, string(b.fallback))
		}
		b.localizers[l] = goi18n.NewLocalizer(b.messages, langs...)
	}
	return b, nil
}

func (b *Bundle) add(l locale.Locale, raw []byte) error {
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	strs := map[string]string{}
	lists := map[string][]string{}
	if err := flatten("", tree, strs, lists); err != nil {
		return err
	}

	msgs := make([]*goi18n.Message, 0, len(strs))
	blank := map[string]struct{}{}
	for id, v := range strs {
		if v == "" {
			blank[id] = struct{}{}
			continue
		}
		msgs = append(msgs, &goi18n.Message{ID: id, Other: v})
	}
	if err := b.messages.AddMessages(l.Tag(), msgs...); err != nil {
		return fmt.Errorf("add messages: %w", err)
	}
	b.lists[l] = lists
	b.blank[l] = blank
	return nil
}

// flatten walks nested YAML maps and joins keys with dots.
func flatten(prefix string, node any, strs map[string]string, lists map[string][]string) error {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if err := flatten(key, child, strs, lists); err != nil {
				return err
			}
		}
	case []any:
		items := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := scalar(item)
			if !ok {
				return fmt.Errorf("key %s[%d]: list items must be scalars", prefix, i)
			}
			items = append(items, s)
		}
		lists[prefix] = items
	case nil:
		strs[prefix] = ""
	default:
		s, ok := scalar(v)
		if !ok {
			return fmt.Errorf("key %s: unsupported value %T", prefix, v)
		}
		strs[prefix] = s
	}
	return nil
}

func scalar(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case int, int64, float64, bool:
		return fmt.Sprint(s), true
	case nil:
		return "", true
	default:
		return "", false
	}
}

// Fallback returns the locale consulted when a key is missing.
func (b *Bundle) Fallback() locale.Locale { return b.fallback }

// T returns the translation for key in l, falling back to the default locale
// and finally to the key itself.
func (b *Bundle) T(l locale.Locale, key string) string {
	return b.TWith(l, key, nil)
}

// TWith is T with template data for messages such as "© {{.Year}} Harmiana".
func (b *Bundle) TWith(l locale.Locale, key string, data map[string]any) string {
	l = locale.Resolve(string(l))
	if _, ok := b.blank[l][key]; ok {
		return ""
	}
	loc, ok := b.localizers[l]
	if !ok {
		return key
	}
	cfg := &goi18n.LocalizeConfig{MessageID: key}
	if data != nil {
		cfg.TemplateData = data
	}
	// A message found only in the fallback locale comes back together with
	// a MessageNotFoundErr for the requested one.
	msg, err := loc.Localize(cfg)
	var notFound *goi18n.MessageNotFoundErr
	if err != nil && !errors.As(err, &notFound) {
		return key
	}
	if msg != "" {
		return msg
	}
	if _, ok := b.blank[b.fallback][key]; ok {
		return ""
	}
	return key
}

// List returns the string list stored under key, falling back to the default
// locale. A missing list is nil.
func (b *Bundle) List(l locale.Locale, key string) []string {
	l = locale.Resolve(string(l))
	items, ok := b.lists[l][key]
	if !ok {
		items = b.lists[b.fallback][key]
	}
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// Translator returns the lookup bound to l.
func (b *Bundle) Translator(l locale.Locale) Translator {
	return Translator{bundle: b, lang: locale.Resolve(string(l))}
}

// Translator is a Bundle bound to one locale: the current-language setting of a
// render.
type Translator struct {
	bundle *Bundle
	lang   locale.Locale
}

// Lang returns the bound locale; the zero Translator reports the default.
func (t Translator) Lang() locale.Locale { return locale.Resolve(string(t.lang)) }

func (t Translator) T(key string) string {
	if t.bundle == nil {
		return key
	}
	return t.bundle.T(t.lang, key)
}

func (t Translator) TWith(key string, data map[string]any) string {
	if t.bundle == nil {
		return key
	}
	return t.bundle.TWith(t.lang, key, data)
}

func (t Translator) List(key string) []string {
	if t.bundle == nil {
		return nil
	}
	return t.bundle.List(t.lang, key)
}
