package personalize

import (
	"strings"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	log "github.com/sirupsen/logrus"
)

// UnknownArea is used when no area name can be resolved.
const UnknownArea = "Unknown Area"

// PersonalizedMessage is one ready-to-send text for one recipient.
type PersonalizedMessage struct {
	CustomerID uint   `json:"customer_id"`
	Language   string `json:"language"`
	Text       string `json:"text"`
	AreaName   string `json:"area_name"`
}

// Composition is the ordered set of messages for one recipient, one per
// resolved language.
type Composition struct {
	Messages []PersonalizedMessage `json:"messages"`
}

// Plain returns the text when the composition holds exactly one message.
func (c Composition) Plain() (string, bool) {
	if len(c.Messages) != 1 {
		return "", false
	}
	return c.Messages[0].Text, true
}

func (c Composition) Texts() []string {
	texts := make([]string, len(c.Messages))
	for i, m := range c.Messages {
		texts[i] = m.Text
	}
	return texts
}

func (c Composition) Languages() []string {
	langs := make([]string, len(c.Messages))
	for i, m := range c.Messages {
		langs[i] = m.Language
	}
	return langs
}

// ComposeMessages builds one message per language resolved for the customer.
// Each language is composed independently: its own variant, its own
// localized area name and its own return reminder.
func ComposeMessages(body Body, c models.Customer, eta string, area *models.Area) Composition {
	if area == nil {
		log.WithFields(log.Fields{"customer_id": c.ID, "area_id": c.AreaID}).Warn("No area metadata, composing without it")
	}

	langs := ResolvePreferredLanguages(c, area)
	messages := make([]PersonalizedMessage, 0, len(langs))
	for _, lang := range langs {
		messages = append(messages, composeFor(body, c, eta, area, lang))
	}
	return Composition{Messages: messages}
}

func composeFor(body Body, c models.Customer, eta string, area *models.Area, lang string) PersonalizedMessage {
	local := c
	local.Area = areaLabel(c, area, lang)

	text := applyPlaceholders(SelectTemplateVariant(body, lang), local, eta, area, []string{lang})
	return PersonalizedMessage{
		CustomerID: c.ID,
		Language:   lang,
		Text:       text,
		AreaName:   local.Area,
	}
}

// LocalizedAreaName returns the area's name in lang, falling back to the
// English name and then to UnknownArea.
func LocalizedAreaName(area *models.Area, lang string) string {
	if area == nil {
		return UnknownArea
	}

	var name string
	switch lang {
	case LangArabic:
		name = area.NameArabic
	case LangHebrew:
		name = area.NameHebrew
	default:
		name = area.NameEnglish
	}
	return firstNonEmpty(name, area.NameEnglish, UnknownArea)
}

// areaLabel keeps the customer's own label when no area metadata exists.
func areaLabel(c models.Customer, area *models.Area, lang string) string {
	if area == nil && strings.TrimSpace(c.Area) != "" {
		return c.Area
	}
	return LocalizedAreaName(area, lang)
}
