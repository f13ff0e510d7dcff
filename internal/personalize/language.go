// Package personalize turns a message template, a customer, an area and an
// optional ETA into the final per-language message texts.
//
// Everything in this package is pure: callers resolve areas, templates and
// ETAs beforehand and pass them in.
package personalize

import (
	"strings"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"
)

const (
	LangEnglish = "en"
	LangHebrew  = "he"
	LangArabic  = "ar"
)

// ResolvePreferredLanguages returns the ordered languages a customer should
// receive. The first non-empty level wins: the customer's explicit preferred
// language, then the customer's language, then the area's one or two
// preferred languages. English is the last resort.
func ResolvePreferredLanguages(c models.Customer, area *models.Area) []string {
	if lang := strings.TrimSpace(c.PreferredLanguage); lang != "" {
		return []string{lang}
	}
	if lang := strings.TrimSpace(c.Language); lang != "" {
		return []string{lang}
	}

	langs := AreaLanguages(area)
	if len(langs) == 0 {
		return []string{LangEnglish}
	}
	return langs
}

// AreaLanguages returns the area's distinct, trimmed preferred languages.
func AreaLanguages(area *models.Area) []string {
	if area == nil {
		return nil
	}

	var langs []string
	first := strings.TrimSpace(area.PreferredLanguage1)
	if first != "" {
		langs = append(langs, first)
	}
	second := strings.TrimSpace(area.PreferredLanguage2)
	if second != "" && second != first {
		langs = append(langs, second)
	}
	return langs
}
