// Package i18n holds the presentation string tables and default category
// labels for each supported language.
package i18n

import (
	"context"
	"log/slog"
	"strings"
)

// Language is a supported locale tag.
type Language string

const (
	English Language = "en"
	Italian Language = "it"
)

// DefaultLanguage is used when nothing valid is stored.
const DefaultLanguage = English

// StorageKey is the key the selected language is persisted under.
const StorageKey = "language"

// Languages lists the supported languages in toggle order.
var Languages = []Language{English, Italian}

// KeyValue is the slice of the storage contract the language preference needs.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Parse returns the language for tag, falling back to DefaultLanguage.
func Parse(tag string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(tag))) {
	case Italian:
		return Italian
	case English:
		return English
	default:
		return DefaultLanguage
	}
}

// Valid reports whether tag names a supported language exactly.
func Valid(tag string) bool {
	switch Language(tag) {
	case English, Italian:
		return true
	default:
		return false
	}
}

// Next returns the language after l in toggle order.
func (l Language) Next() Language {
	for i, lang := range Languages {
		if lang == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return DefaultLanguage
}

// Load reads the stored language. Missing, unknown or unreadable values
// yield DefaultLanguage.
func Load(ctx context.Context, kv KeyValue) Language {
	raw, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		slog.Warn("Failed to read language preference", "error", err)
		return DefaultLanguage
	}
	if !ok || !Valid(raw) {
		return DefaultLanguage
	}
	return Language(raw)
}

// Save persists the language. Failures are logged and otherwise ignored.
func Save(ctx context.Context, kv KeyValue, lang Language) {
	if err := kv.Set(ctx, StorageKey, string(lang)); err != nil {
		slog.Warn("Failed to save language preference", "language", lang, "error", err)
	}
}
