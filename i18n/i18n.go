// Package i18n holds the site's English and Arabic dictionaries and the lookup
// rules shared by the pages, the email templates and the translations endpoint.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	English = "en"
	Arabic  = "ar"
)

// Supported lists the site languages, English first since it is the fallback
var Supported = []string{English, Arabic}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Table maps (language, key) to a localized string
type Table struct {
	dictionaries map[string]map[string]string
}

// NewTable builds a table from per-language dictionaries
func NewTable(dictionaries map[string]map[string]string) *Table {
	return &Table{dictionaries: dictionaries}
}

// Default is the table backed by the built-in dictionaries
var Default = NewTable(map[string]map[string]string{
	English: english,
	Arabic:  arabic,
})

// T looks key up in lang's dictionary, then in English, and finally returns the key itself
func (t *Table) T(lang, key string) string {
	if value, ok := t.dictionaries[Normalize(lang)][key]; ok {
		return value
	}
	if value, ok := t.dictionaries[English][key]; ok {
		return value
	}
	return key
}

// Dictionary returns every key known in English with lang's translation where one exists
func (t *Table) Dictionary(lang string) map[string]string {
	merged := make(map[string]string, len(t.dictionaries[English]))
	for key, value := range t.dictionaries[English] {
		merged[key] = value
	}
	for key, value := range t.dictionaries[Normalize(lang)] {
		merged[key] = value
	}
	return merged
}

// T looks key up in the default table
func T(lang, key string) string {
	return Default.T(lang, key)
}

// Normalize coerces a language code to one of the supported languages.
// Region subtags are ignored ("ar-SA" is Arabic) and anything unknown becomes English.
func Normalize(lang string) string {
	base := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	if base == Arabic {
		return Arabic
	}
	return English
}

// IsSupported reports whether lang names a site language exactly
func IsSupported(lang string) bool {
	return lang == English || lang == Arabic
}

// Direction returns the document reading direction for lang
func Direction(lang string) string {
	if Normalize(lang) == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Match picks the best site language for an Accept-Language header
func Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return English
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return English
	}
	return Supported[index]
}

// Localized returns the Arabic variant when lang is Arabic and one is set, otherwise the English value
func Localized(lang, en string, ar *string) string {
	if Normalize(lang) == Arabic && ar != nil && strings.TrimSpace(*ar) != "" {
		return *ar
	}
	return en
}

// LocalizedList is Localized for ordered lists such as package features
func LocalizedList(lang string, en, ar []string) []string {
	if Normalize(lang) == Arabic && len(ar) > 0 {
		return ar
	}
	return en
}
