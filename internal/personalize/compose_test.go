package personalize

import (
	"strings"
	"testing"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deliveryTemplate = "Hi {name}, your package {package_id} arrives {eta} in {area}."

func TestComposeMessagesSingleLanguage(t *testing.T) {
	c := models.Customer{ID: 7, Name: "Dana", PackageID: "X1"}
	area := &models.Area{NameEnglish: "Nazareth", NameHebrew: "נצרת", NameArabic: "الناصرة", PreferredLanguage1: "en"}

	comp := ComposeMessages(PlainText(deliveryTemplate), c, "14:30", area)

	text, ok := comp.Plain()
	require.True(t, ok)
	assert.Equal(t, "Hi Dana, your package X1 arrives 14:30 in Nazareth.", text)
	assert.Equal(t, uint(7), comp.Messages[0].CustomerID)
	assert.Equal(t, "en", comp.Messages[0].Language)
	assert.Equal(t, "Nazareth", comp.Messages[0].AreaName)
}

func TestComposeMessagesDualLanguage(t *testing.T) {
	c := models.Customer{Name: "Dana", PackageID: "X1"}
	area := &models.Area{NameEnglish: "Nazareth", NameHebrew: "נצרת", NameArabic: "الناصرة", PreferredLanguage1: "he", PreferredLanguage2: "ar"}

	comp := ComposeMessages(PlainText(deliveryTemplate), c, "14:30", area)

	_, ok := comp.Plain()
	assert.False(t, ok)
	require.Len(t, comp.Messages, 2)
	assert.Equal(t, []string{"he", "ar"}, comp.Languages())
	assert.Equal(t, "Hi Dana, your package X1 arrives 14:30 in נצרת.", comp.Messages[0].Text)
	assert.Equal(t, "Hi Dana, your package X1 arrives 14:30 in الناصرة.", comp.Messages[1].Text)
	assert.NotEqual(t, comp.Messages[0].Text, comp.Messages[1].Text)
}

func TestComposeMessagesSelectsVariantPerLanguage(t *testing.T) {
	body := MultiVariant{English: "EN {area}", Hebrew: "HE {area}", Arabic: "AR {area}"}
	area := &models.Area{NameEnglish: "Akko", NameHebrew: "עכו", PreferredLanguage1: "he", PreferredLanguage2: "ar"}

	comp := ComposeMessages(body, models.Customer{}, "", area)

	// no Arabic name: falls back to English
	assert.Equal(t, []string{"HE עכו", "AR Akko"}, comp.Texts())
}

func TestComposeMessagesReminderPerLanguage(t *testing.T) {
	c := models.Customer{HasReturn: true}
	area := &models.Area{NameEnglish: "Akko", PreferredLanguage1: "he", PreferredLanguage2: "ar"}

	comp := ComposeMessages(PlainText("Hi"), c, "", area)
	require.Len(t, comp.Messages, 2)

	he, ar := comp.Messages[0].Text, comp.Messages[1].Text
	assert.Equal(t, 1, strings.Count(he, ReturnReminder("he")))
	assert.Equal(t, 0, strings.Count(he, ReturnReminder("ar")))
	assert.Equal(t, 1, strings.Count(ar, ReturnReminder("ar")))
	assert.Equal(t, 0, strings.Count(ar, ReturnReminder("he")))
}

func TestComposeMessagesIdenticalRemindersOncePerMessage(t *testing.T) {
	c := models.Customer{HasReturn: true}
	area := &models.Area{PreferredLanguage1: "fr", PreferredLanguage2: "de"}

	comp := ComposeMessages(PlainText("Hi"), c, "", area)
	for _, m := range comp.Messages {
		assert.Equal(t, 1, strings.Count(m.Text, ReturnReminder("en")))
	}
}

func TestComposeMessagesWithoutArea(t *testing.T) {
	comp := ComposeMessages(PlainText("in {area}"), models.Customer{Area: "Old label"}, "", nil)
	text, ok := comp.Plain()
	require.True(t, ok)
	assert.Equal(t, "in Old label", text)

	comp = ComposeMessages(PlainText("in {area}"), models.Customer{}, "", nil)
	text, _ = comp.Plain()
	assert.Equal(t, "in "+UnknownArea, text)
}

func TestComposeMessagesDoesNotMutateCustomer(t *testing.T) {
	c := models.Customer{Area: "label"}
	area := &models.Area{NameEnglish: "Akko", PreferredLanguage1: "en"}
	ComposeMessages(PlainText("{area}"), c, "", area)
	assert.Equal(t, "label", c.Area)
}

func TestLocalizedAreaName(t *testing.T) {
	area := &models.Area{NameEnglish: "Akko", NameHebrew: "עכו", NameArabic: "عكا"}
	assert.Equal(t, "عكا", LocalizedAreaName(area, "ar"))
	assert.Equal(t, "עכו", LocalizedAreaName(area, "he"))
	assert.Equal(t, "Akko", LocalizedAreaName(area, "en"))
	assert.Equal(t, "Akko", LocalizedAreaName(&models.Area{NameEnglish: "Akko"}, "ar"))
	assert.Equal(t, UnknownArea, LocalizedAreaName(&models.Area{}, "he"))
	assert.Equal(t, UnknownArea, LocalizedAreaName(nil, "he"))
}
