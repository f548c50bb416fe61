package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator resolves dotted key paths against the embedded per-locale
// translation documents. Documents are decoded once at construction and are
// immutable afterwards.
type Translator struct {
	documents map[Locale]map[string]any
}

// NewTranslator loads and parses every embedded locale document.
func NewTranslator() (*Translator, error) {
	documents := make(map[Locale]map[string]any, len(Supported()))
	for _, locale := range Supported() {
		data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.yaml", locale))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale document %s: %w", locale, err)
		}
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse locale document %s: %w", locale, err)
		}
		documents[locale] = doc
	}
	return &Translator{documents: documents}, nil
}

// Lookup resolves a dotted key path ("form.title.label") inside the document
// for locale. A path that is absent or resolves to a non-string node reports
// ok == false.
func (t *Translator) Lookup(locale Locale, key string) (string, bool) {
	doc, ok := t.documents[locale]
	if !ok {
		return "", false
	}

	var current any = doc
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = node[part]
		if !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	return s, ok
}

// Translate resolves key for locale, falling back to the English document and
// finally to the raw key itself. A missing translation is never an error; at
// worst the consumer shows the key.
func (t *Translator) Translate(locale Locale, key string) string {
	if s, ok := t.Lookup(locale, key); ok {
		return s
	}
	if locale != LocaleEn {
		if s, ok := t.Lookup(LocaleEn, key); ok {
			return s
		}
	}
	return key
}
