package personalize

import (
	"fmt"
	"strings"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	log "github.com/sirupsen/logrus"
)

const (
	currencySymbol = "₪"
	paragraphBreak = "\n\n"
)

// ApplyPlaceholders substitutes every customer, area and ETA token in text
// and appends the return reminder when the customer has an item to return.
// eta is substituted only when non-empty. It never fails: on any internal
// error the original text is returned.
func ApplyPlaceholders(text string, c models.Customer, eta string, area *models.Area) string {
	return applyPlaceholders(text, c, eta, area, ResolvePreferredLanguages(c, area))
}

// applyPlaceholders is ApplyPlaceholders with the reminder languages fixed by
// the caller.
func applyPlaceholders(text string, c models.Customer, eta string, area *models.Area, langs []string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("customer_id", c.ID).Warnf("Placeholder substitution failed, keeping template: %v", r)
			out = text
		}
	}()

	price := ""
	if c.PackagePrice != "" {
		price = currencySymbol + c.PackagePrice
	}

	out = text
	out = strings.ReplaceAll(out, "{name}", c.Name)
	out = strings.ReplaceAll(out, "{phone}", c.Phone)
	out = strings.ReplaceAll(out, "{phone2}", c.Phone2)
	out = strings.ReplaceAll(out, "{area}", c.Area)
	out = strings.ReplaceAll(out, "{package_price}", price)
	out = strings.ReplaceAll(out, "{package_id}", c.PackageID)
	out = strings.ReplaceAll(out, "{business_name}", c.BusinessName)

	if area != nil {
		out = strings.ReplaceAll(out, "{area_he}", orDefault(area.NameHebrew, c.Area))
		out = strings.ReplaceAll(out, "{area_en}", orDefault(area.NameEnglish, c.Area))
		out = strings.ReplaceAll(out, "{area_ar}", orDefault(area.NameArabic, c.Area))
	}

	if eta != "" {
		out = strings.ReplaceAll(out, "{eta}", eta)
	}

	if c.HasReturn {
		if block := reminderBlock(langs); block != "" {
			out += paragraphBreak + block
		}
	}
	return out
}

// ETAText reduces an ETA value of any supported shape to its text.
func ETAText(v any) string {
	switch eta := v.(type) {
	case nil:
		return ""
	case string:
		return eta
	case models.ETA:
		return eta.ETA
	case *models.ETA:
		if eta == nil {
			return ""
		}
		return eta.ETA
	case fmt.Stringer:
		return eta.String()
	default:
		return fmt.Sprint(eta)
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
