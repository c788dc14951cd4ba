// Package whatsapp builds wa.me deep links. Opening one hands the guest
// to an external messaging app; nothing is awaited and success is assumed
// once the link opens.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

type Builder struct {
	phone string // international format, digits only, e.g. "6281234567890"
}

func New(phone string) *Builder {
	return &Builder{phone: strings.TrimPrefix(phone, "+")}
}

func (b *Builder) Phone() string { return b.phone }

// Link returns https://wa.me/<phone>?text=<encoded>. Spaces encode as
// %20, not '+', to match how messaging apps parse the text parameter.
func (b *Builder) Link(text string) string {
	return "https://wa.me/" + b.phone + "?text=" + encodeText(text)
}

func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BookingMessage renders the plain-text booking request the concierge
// receives. The template is part of the product; keep it stable.
func BookingMessage(villaName, guest, email, checkIn string, nights, guests int, totalDisplay string) string {
	return strings.TrimSpace(fmt.Sprintf(`*New Booking Request - StayinUBUD*

*Villa:* %s
*Guest:* %s
*Email:* %s
*Check-in:* %s
*Nights:* %d
*Guests:* %d

*Estimated Total:* %s

------------------------
Please confirm availability for these dates.`,
		villaName, guest, email, checkIn, nights, guests, totalDisplay))
}
