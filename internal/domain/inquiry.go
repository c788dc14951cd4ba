package domain

// Inquiry is a lead record: write-only, no identity reuse, no dedup.
// Every submission inserts a fresh row. Booking requests reuse the same
// table with a summary line as the message.
type Inquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
