// Package i18n holds the translation catalog for every user-visible string.
// Strings are looked up by key; an unknown key is returned unchanged.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when a requested language has no catalog
const DefaultLanguage = "en"

//go:embed locales/*.po
var locales embed.FS

// lookup is called through a function value so vet does not treat the
// gotext printf-style Get as a wrapper around every key.
var lookup func(key string, vars ...any) string

// Load selects the catalog for lang, falling back to DefaultLanguage
func Load(lang string) error {
	data, err := locales.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		data, err = locales.ReadFile(path.Join("locales", DefaultLanguage+".po"))
		if err != nil {
			return fmt.Errorf("no catalog for %q or %q: %w", lang, DefaultLanguage, err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)
	lookup = po.Get
	return nil
}

// Get returns the translation for key, or key itself before Load
func Get(key string) string {
	if lookup == nil {
		return key
	}
	return lookup(key)
}

// Getf formats the translation for key with vars
func Getf(key string, vars ...any) string {
	return fmt.Sprintf(Get(key), vars...)
}

// Languages returns the codes of the embedded catalogs
func Languages() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		langs = append(langs, name[:len(name)-len(path.Ext(name))])
	}
	return langs
}
