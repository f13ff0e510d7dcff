package personalize

import "github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

// Body is a message template in one of two shapes: PlainText, already
// resolved to a single string, or MultiVariant carrying per-language texts.
type Body interface {
	variant(lang string) string
}

// PlainText is a pre-resolved template. It ignores the requested language.
type PlainText string

func (p PlainText) variant(string) string {
	return string(p)
}

// MultiVariant holds the English, Hebrew and Arabic variants of a template.
// Any subset may be empty.
type MultiVariant struct {
	English string `json:"english"`
	Hebrew  string `json:"hebrew"`
	Arabic  string `json:"arabic"`
}

func (m MultiVariant) variant(lang string) string {
	return firstNonEmpty(m.fallbackChain(lang)...)
}

func (m MultiVariant) fallbackChain(lang string) []string {
	switch lang {
	case LangArabic:
		return []string{m.Arabic, m.English, m.Hebrew}
	case LangHebrew:
		return []string{m.Hebrew, m.Arabic, m.English}
	default:
		return []string{m.English, m.Arabic, m.Hebrew}
	}
}

// IsEmpty reports whether no variant carries text.
func (m MultiVariant) IsEmpty() bool {
	return m.English == "" && m.Hebrew == "" && m.Arabic == ""
}

// FromTemplate converts a stored template into its variant body.
func FromTemplate(t models.Template) MultiVariant {
	return MultiVariant{
		English: t.TemplateEnglish,
		Hebrew:  t.TemplateHebrew,
		Arabic:  t.TemplateArabic,
	}
}

// SelectTemplateVariant picks the text for lang, falling back along a fixed
// per-language order so that a variant is returned whenever one exists.
func SelectTemplateVariant(body Body, lang string) string {
	if body == nil {
		return ""
	}
	return body.variant(lang)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
