package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Placeholder is the token in an operator-editable template that gets
// replaced with the recipient's name.
const Placeholder = "{nama}"

// DefaultTemplate is used whenever no template is stored in settings.
const DefaultTemplate = "Halo {nama}! Terima kasih telah mendaftar di UKM Basket ITB Yadika. Kami akan segera menghubungi Anda untuk informasi lebih lanjut. Salam, Tim Basket ITB Yadika"

// DisabledLink is returned when no usable link can be built. Consumers must
// render it as a disabled affordance instead of following it.
const DisabledLink = "#"

// RenderTemplate substitutes the recipient's name into the template.
// Only the first occurrence of the placeholder is replaced.
func RenderTemplate(template, nama string) string {
	if template == "" {
		template = DefaultTemplate
	}
	return strings.Replace(template, Placeholder, nama, 1)
}

// BuildLink produces a wa.me deep link for the given phone and name,
// personalizing the template as the message text. When either phone or name
// is missing it returns DisabledLink rather than a malformed URL.
func BuildLink(phone, nama, template string) string {
	formatted := NormalizePhone(phone)
	if formatted == "" || nama == "" {
		return DisabledLink
	}

	message := RenderTemplate(template, nama)
	return fmt.Sprintf("https://wa.me/%s?text=%s", formatted, url.QueryEscape(message))
}
