// Package i18n provides the bilingual (en/ru) message catalog for the
// public site and the admin panel. The active language is always passed
// explicitly through handler and template context, never held as ambient
// process-wide state.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales
var localesFS embed.FS

// SupportedLanguages lists the languages the site ships translations for.
var SupportedLanguages = []string{"en", "ru"}

// DefaultLanguage is used when no preference can be determined.
const DefaultLanguage = "en"

// Message represents a single translatable message.
type Message struct {
	ID          string `json:"id"`
	Translation string `json:"translation"`
}

// messageFile represents the structure of a messages JSON file.
type messageFile struct {
	Language string    `json:"language"`
	Messages []Message `json:"messages"`
}

// Catalog holds all translations for all supported languages.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]string // lang -> key -> translation
	matcher      language.Matcher
}

// Load reads the embedded locale files and builds the catalog.
func Load() (*Catalog, error) {
	c := &Catalog{
		translations: make(map[string]map[string]string),
	}

	tags := make([]language.Tag, 0, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		tags = append(tags, language.MustParse(lang))
	}
	c.matcher = language.NewMatcher(tags)

	for _, lang := range SupportedLanguages {
		if err := c.loadLanguage(lang); err != nil {
			return nil, fmt.Errorf("loading language %s: %w", lang, err)
		}
	}

	return c, nil
}

func (c *Catalog) loadLanguage(lang string) error {
	path := fmt.Sprintf("locales/%s/messages.json", lang)
	data, err := localesFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var mf messageFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.translations[lang] = make(map[string]string, len(mf.Messages))
	for _, msg := range mf.Messages {
		c.translations[lang][msg.ID] = msg.Translation
	}

	return nil
}

// T returns the translation of key in lang. Missing translations fall back
// to the default language, then to the key itself so gaps are visible.
func (c *Catalog) T(lang, key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if msgs, ok := c.translations[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msgs, ok := c.translations[DefaultLanguage]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	return key
}

// IsSupported reports whether lang is one of the supported languages.
func IsSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// MatchLanguage picks the best supported language for an Accept-Language
// header value. Returns the default language when nothing matches.
func (c *Catalog) MatchLanguage(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}

	_, index, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return SupportedLanguages[index]
}
