// Package i18n holds the strings the demo shows around the keyboard.
// The key labels themselves are fixed and never translated.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

var (
	mu sync.RWMutex
	i  *I18N
)

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// Init loads the built in English and Spanish messages and selects lang,
// falling back to English.
func Init(lang string) error {
	bundle := newBundle()

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("failed to read embedded locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(locales, path.Join("locales", entry.Name())); err != nil {
			return fmt.Errorf("failed to load %s: %w", entry.Name(), err)
		}
	}

	set(bundle, lang)
	return nil
}

// InitFromBytes replaces the built in messages with messageFiles. Names must
// carry the language and format, as in "active.fr.toml".
func InitFromBytes(messageFiles []MessageFile, lang string) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return fmt.Errorf("failed to parse %s: %w", messageFile.Name, err)
		}
	}

	set(bundle, lang)
	return nil
}

func set(bundle *i18n.Bundle, lang string) {
	mu.Lock()
	defer mu.Unlock()
	i = &I18N{
		localizer: i18n.NewLocalizer(bundle, lang, language.English.String()),
		bundle:    bundle,
	}
}

// SetWithCode switches the language of an initialized bundle.
func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if i == nil {
		return fmt.Errorf("i18n not initialized")
	}
	i = &I18N{
		localizer: i18n.NewLocalizer(i.bundle, lang.String(), language.English.String()),
		bundle:    i.bundle,
	}
	return nil
}

func current() *I18N {
	mu.RLock()
	defer mu.RUnlock()
	return i
}

// GetString returns the message for key, or key itself when it is missing.
func GetString(key string) string {
	return localize(key, &i18n.LocalizeConfig{MessageID: key})
}

func GetStringWithData(key string, templateData map[string]any) string {
	return localize(key, &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
}

// GetPluralString picks the plural form for count and passes it as .Count.
func GetPluralString(key string, count int) string {
	return localize(key, &i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
}

func localize(key string, config *i18n.LocalizeConfig) string {
	loc := current()
	if loc == nil {
		return key
	}
	msg, err := loc.localizer.Localize(config)
	if err != nil {
		return key
	}
	return msg
}
