package personalize

import (
	"testing"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSelectTemplateVariant(t *testing.T) {
	full := MultiVariant{English: "EN", Hebrew: "HE", Arabic: "AR"}

	tests := []struct {
		name string
		body Body
		lang string
		want string
	}{
		{"arabic present", full, "ar", "AR"},
		{"hebrew present", full, "he", "HE"},
		{"english present", full, "en", "EN"},
		{"unknown tag uses english", full, "fr", "EN"},
		{"arabic falls back to english", MultiVariant{English: "EN", Hebrew: "HE"}, "ar", "EN"},
		{"arabic falls back to hebrew last", MultiVariant{Hebrew: "HE"}, "ar", "HE"},
		{"hebrew falls back to arabic", MultiVariant{English: "EN", Arabic: "AR"}, "he", "AR"},
		{"hebrew falls back to english", MultiVariant{English: "EN"}, "he", "EN"},
		{"english falls back to arabic", MultiVariant{Hebrew: "HE", Arabic: "AR"}, "en", "AR"},
		{"english falls back to hebrew", MultiVariant{Hebrew: "HE"}, "en", "HE"},
		{"all empty", MultiVariant{}, "ar", ""},
		{"plain text bypasses selection", PlainText("as is"), "ar", "as is"},
		{"nil body", nil, "en", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectTemplateVariant(tt.body, tt.lang))
		})
	}
}

func TestFromTemplate(t *testing.T) {
	body := FromTemplate(models.Template{TemplateEnglish: "e", TemplateHebrew: "h", TemplateArabic: "a"})
	assert.Equal(t, MultiVariant{English: "e", Hebrew: "h", Arabic: "a"}, body)
	assert.False(t, body.IsEmpty())
	assert.True(t, MultiVariant{}.IsEmpty())
}
