package domain

// Booking is a closed date interval during which a villa is unavailable.
// Intervals for one villa may overlap or duplicate; no merging happens
// anywhere. Membership in any interval makes a date unavailable.
type Booking struct {
	ID        string `json:"id"`
	VillaID   string `json:"villa_id"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"` // inclusive; start == end blocks one day
}

// Covers reports inclusive membership: start <= d <= end.
func (b Booking) Covers(d Date) bool {
	return !d.Before(b.StartDate) && !d.After(b.EndDate)
}
