package i18n

import (
	"embed"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const fallbackLocale = "en"

// Bundle holds the user-facing message tables the mobile client used to
// ship locally. Lookups fall back to English, then to the key itself.
type Bundle struct {
	messages map[string]map[string]string
}

func Load() (*Bundle, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}

	b := &Bundle{messages: make(map[string]map[string]string)}

	for _, entry := range entries {
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, err
		}

		var table map[string]string
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, err
		}

		locale := entry.Name()[:len(entry.Name())-len(".yaml")]
		b.messages[locale] = table
	}

	return b, nil
}

func (b *Bundle) T(locale, key string) string {
	if table, ok := b.messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if table, ok := b.messages[fallbackLocale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	return key
}
