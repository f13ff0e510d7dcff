package personalize

// Return reminders are fixed per language and do not follow the UI locale.
var returnReminders = map[string]string{
	LangEnglish: "Please note: you have an item to return. Kindly have it ready for the courier.",
	LangHebrew:  "שימו לב: יש לכם פריט להחזרה. נא להכין אותו עבור השליח.",
	LangArabic:  "يرجى الانتباه: لديك غرض للإرجاع. الرجاء تجهيزه للمندوب.",
}

// ReturnReminder returns the reminder sentence for lang, or the English one
// when no translation exists.
func ReturnReminder(lang string) string {
	if r, ok := returnReminders[lang]; ok {
		return r
	}
	return returnReminders[LangEnglish]
}

// reminderBlock joins the reminders of langs with a blank line, dropping a
// reminder whose text is identical to one already included.
func reminderBlock(langs []string) string {
	block := ""
	seen := make(map[string]bool, len(langs))
	for _, lang := range langs {
		r := ReturnReminder(lang)
		if seen[r] {
			continue
		}
		seen[r] = true
		if block != "" {
			block += paragraphBreak
		}
		block += r
	}
	return block
}
