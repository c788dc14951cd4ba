package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"stayinubud/internal/adapters/observability"
	"stayinubud/internal/adapters/whatsapp"
	"stayinubud/internal/domain"
)

// BookingRequest is a user-filled reservation form for one villa.
type BookingRequest struct {
	Name    string
	Email   string
	CheckIn domain.Date
	Nights  int
	Guests  int
}

// Validate mirrors the form's native constraints; nothing beyond them is
// hard-rejected. In particular guests above villa capacity passes (the
// capacity ceiling is a form hint, and the concierge sorts it out over
// WhatsApp).
func (r BookingRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalid)
	case strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@"):
		return fmt.Errorf("%w: a valid email is required", ErrInvalid)
	case r.CheckIn.IsZero():
		return fmt.Errorf("%w: check-in date is required", ErrInvalid)
	case r.Nights < 1:
		return fmt.Errorf("%w: nights must be at least 1", ErrInvalid)
	case r.Guests < 1:
		return fmt.Errorf("%w: guests must be at least 1", ErrInvalid)
	}
	return nil
}

// BookingQuote is what a submission produces: the computed total and the
// WhatsApp handoff, which is the actual confirmation channel.
type BookingQuote struct {
	VillaSlug    string `json:"villa_slug"`
	VillaName    string `json:"villa_name"`
	Nights       int    `json:"nights"`
	Guests       int    `json:"guests"`
	CheckIn      string `json:"check_in"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
	Message      string `json:"message"`
	WhatsAppURL  string `json:"whatsapp_url"`
}

type BookingService struct {
	store domain.Store
	links *whatsapp.Builder
}

func NewBookingService(s domain.Store, links *whatsapp.Builder) *BookingService {
	return &BookingService{store: s, links: links}
}

// Submit turns the form into a persisted lead and the messaging handoff.
// The lead write is fire-and-forget: a failure is logged and the handoff
// still goes out, exactly once. The inquiry row is a secondary lead log,
// not the booking channel.
func (s *BookingService) Submit(ctx context.Context, villa domain.Villa, req BookingRequest) BookingQuote {
	total := int64(req.Nights) * villa.PricePerNight
	display := FormatIDR(total)

	if req.Guests > villa.Capacity {
		log.Warn().
			Str("villa", villa.Slug).
			Int("guests", req.Guests).
			Int("capacity", villa.Capacity).
			Msg("booking request above villa capacity, accepted as lead")
	}

	lead := domain.Inquiry{
		Name:  req.Name,
		Email: req.Email,
		Message: fmt.Sprintf("BOOKING REQUEST: %s | %s | %d nights | %d pax",
			villa.Name, req.CheckIn, req.Nights, req.Guests),
	}
	if err := s.store.InsertInquiry(ctx, lead); err != nil {
		// at-most-once, no retry; the user proceeds to WhatsApp regardless
		log.Warn().Err(err).Str("villa", villa.Slug).Msg("booking lead persist failed")
		observability.ObserveBookingLead(false)
	} else {
		observability.ObserveBookingLead(true)
	}

	msg := whatsapp.BookingMessage(villa.Name, req.Name, req.Email, req.CheckIn.String(), req.Nights, req.Guests, display)
	return BookingQuote{
		VillaSlug:    villa.Slug,
		VillaName:    villa.Name,
		Nights:       req.Nights,
		Guests:       req.Guests,
		CheckIn:      req.CheckIn.String(),
		Total:        total,
		TotalDisplay: display,
		Message:      msg,
		WhatsAppURL:  s.links.Link(msg),
	}
}

// FormatIDR renders whole rupiah the way the storefront does:
// 4500000 -> "Rp 4.500.000". Display only; arithmetic stays integral.
func FormatIDR(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("Rp ")
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}
