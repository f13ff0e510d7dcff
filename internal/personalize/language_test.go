package personalize

import (
	"testing"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestResolvePreferredLanguages(t *testing.T) {
	dual := &models.Area{PreferredLanguage1: "he", PreferredLanguage2: "ar"}

	tests := []struct {
		name     string
		customer models.Customer
		area     *models.Area
		want     []string
	}{
		{
			name:     "explicit preferred language ignores area",
			customer: models.Customer{PreferredLanguage: " ar "},
			area:     dual,
			want:     []string{"ar"},
		},
		{
			name:     "customer language used when no preferred language",
			customer: models.Customer{PreferredLanguage: "  ", Language: "he"},
			area:     &models.Area{PreferredLanguage1: "en"},
			want:     []string{"he"},
		},
		{
			name:     "preferred language beats customer language",
			customer: models.Customer{PreferredLanguage: "en", Language: "he"},
			area:     dual,
			want:     []string{"en"},
		},
		{
			name: "area pair in order",
			area: dual,
			want: []string{"he", "ar"},
		},
		{
			name: "identical area languages collapse",
			area: &models.Area{PreferredLanguage1: "ar", PreferredLanguage2: "ar"},
			want: []string{"ar"},
		},
		{
			name: "identical after trimming collapse",
			area: &models.Area{PreferredLanguage1: "he", PreferredLanguage2: " he"},
			want: []string{"he"},
		},
		{
			name: "only second language set",
			area: &models.Area{PreferredLanguage2: "ar"},
			want: []string{"ar"},
		},
		{
			name: "empty area defaults to english",
			area: &models.Area{},
			want: []string{"en"},
		},
		{
			name: "missing area defaults to english",
			want: []string{"en"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePreferredLanguages(tt.customer, tt.area))
		})
	}
}

func TestResolvePreferredLanguagesIsDeterministic(t *testing.T) {
	area := &models.Area{PreferredLanguage1: "he", PreferredLanguage2: "ar"}
	first := ResolvePreferredLanguages(models.Customer{}, area)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ResolvePreferredLanguages(models.Customer{}, area))
	}
	assert.Equal(t, "he", area.PreferredLanguage1)
}
