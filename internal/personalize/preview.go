package personalize

import (
	"strings"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"
)

var previewSeparator = paragraphBreak + strings.Repeat("-", 24) + paragraphBreak

// ComposeDualLanguagePreview renders both of the area's languages into one
// display string, separated by a dashed rule. Each half carries its own
// return reminder exactly once. No ETA is substituted.
//
// Areas without two distinct languages produce the regular composition.
func ComposeDualLanguagePreview(body Body, c models.Customer, area *models.Area) string {
	langs := AreaLanguages(area)
	if len(langs) < 2 {
		return strings.Join(ComposeMessages(body, c, "", area).Texts(), previewSeparator)
	}

	halves := make([]string, 0, len(langs))
	for _, lang := range langs[:2] {
		half := composeFor(body, c, "", area, lang).Text
		if c.HasReturn {
			reminder := ReturnReminder(lang)
			half = strings.ReplaceAll(half, paragraphBreak+reminder, "")
			half = strings.ReplaceAll(half, reminder, "")
			half += paragraphBreak + reminder
		}
		halves = append(halves, half)
	}
	return strings.Join(halves, previewSeparator)
}
