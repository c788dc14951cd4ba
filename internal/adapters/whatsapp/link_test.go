package whatsapp_test

import (
	"strings"
	"testing"

	"stayinubud/internal/adapters/whatsapp"
)

func TestLink_Encoding(t *testing.T) {
	b := whatsapp.New("6281234567890")

	got := b.Link("hello world & more")
	want := "https://wa.me/6281234567890?text=hello%20world%20%26%20more"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	// spaces must be %20, never '+'
	if strings.Contains(got, "+") {
		t.Fatalf("link uses '+' for spaces: %q", got)
	}
}

func TestNew_StripsPlusPrefix(t *testing.T) {
	b := whatsapp.New("+6281234567890")
	if b.Phone() != "6281234567890" {
		t.Fatalf("phone = %q", b.Phone())
	}
}

func TestBookingMessage_Template(t *testing.T) {
	msg := whatsapp.BookingMessage("Villa Amandari", "Ana Guest", "ana@example.com", "2024-07-15", 3, 2, "Rp 13.500.000")

	if !strings.HasPrefix(msg, "*New Booking Request - StayinUBUD*") {
		t.Fatalf("unexpected header:\n%s", msg)
	}
	for _, want := range []string{
		"*Villa:* Villa Amandari",
		"*Guest:* Ana Guest",
		"*Email:* ana@example.com",
		"*Check-in:* 2024-07-15",
		"*Nights:* 3",
		"*Guests:* 2",
		"*Estimated Total:* Rp 13.500.000",
		"Please confirm availability for these dates.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
	if strings.HasSuffix(msg, "\n") {
		t.Fatal("message must be trimmed")
	}
}

func TestBookingMessage_LinkRoundTrip(t *testing.T) {
	b := whatsapp.New("6281234567890")
	msg := whatsapp.BookingMessage("Villa Amandari", "Ana", "a@b.c", "2024-07-15", 2, 2, "Rp 9.000.000")
	link := b.Link(msg)

	if !strings.HasPrefix(link, "https://wa.me/6281234567890?text=") {
		t.Fatalf("link = %q", link)
	}
	// markdown asterisks survive percent-encoding
	if !strings.Contains(link, "%2ANew%20Booking%20Request") {
		t.Fatalf("encoded payload looks wrong: %q", link)
	}
}
