// Package availability classifies calendar dates for a villa and renders
// the month grids behind the two-month availability display.
package availability

import (
	"fmt"
	"iter"
	"time"

	"stayinubud/internal/domain"
)

type Status int

const (
	StatusAvailable Status = iota
	StatusPast
	StatusBooked
)

func (s Status) String() string {
	switch s {
	case StatusPast:
		return "past"
	case StatusBooked:
		return "booked"
	default:
		return "available"
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Classify is a pure function of (bookings, today, date). Today must come
// from the caller, already truncated to a calendar day, so today itself is
// never past. Precedence: past wins over booked.
func Classify(bookings []domain.Booking, today, date domain.Date) Status {
	if date.Before(today) {
		return StatusPast
	}
	for _, b := range bookings {
		if b.Covers(date) {
			return StatusBooked
		}
	}
	return StatusAvailable
}

// Cell is one slot in a month grid: either leading padding before day 1,
// or a day of the month with its classification.
type Cell struct {
	Day     int
	Padding bool
	Status  Status
}

// MonthCells yields the grid for one month: first the padding cells (as
// many as the zero-based weekday of day 1, Sunday = 0), then every day of
// the month classified against the bookings. Month is 1-indexed
// (time.January == 1). The sequence is finite and restartable.
func MonthCells(year int, month time.Month, bookings []domain.Booking, today domain.Date) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		first := domain.NewDate(year, month, 1)
		for i := 0; i < first.Weekday(); i++ {
			if !yield(Cell{Padding: true}) {
				return
			}
		}
		for day := 1; day <= domain.DaysIn(year, month); day++ {
			c := Cell{
				Day:    day,
				Status: Classify(bookings, today, domain.NewDate(year, month, day)),
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Calendar holds the visible month for a two-month side-by-side display.
// It is a per-view value, never shared or process-global.
type Calendar struct {
	year  int
	month time.Month
	floor domain.Date // first day of the current real month
}

// NewCalendar opens on today's month, which is also the navigation floor.
func NewCalendar(today domain.Date) *Calendar {
	return &Calendar{
		year:  today.Year(),
		month: today.Month(),
		floor: domain.NewDate(today.Year(), today.Month(), 1),
	}
}

func (c *Calendar) Year() int         { return c.year }
func (c *Calendar) Month() time.Month { return c.month }

func (c *Calendar) Label() string {
	return fmt.Sprintf("%s %d", c.month, c.year)
}

// SecondMonth is the month shown beside the current one.
func (c *Calendar) SecondMonth() (int, time.Month) {
	return NextMonth(c.year, c.month)
}

// Next steps forward; there is no ceiling.
func (c *Calendar) Next() {
	c.year, c.month = NextMonth(c.year, c.month)
}

// Prev steps backward, but never before the current real month. It
// reports whether the state changed.
func (c *Calendar) Prev() bool {
	y, m := prevMonth(c.year, c.month)
	if domain.NewDate(y, m, 1).Before(c.floor) {
		return false
	}
	c.year, c.month = y, m
	return true
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// Clamp pulls a requested month forward to today's month when it lies in
// the past. The stateless HTTP surface uses this to honor the same floor
// Prev enforces.
func Clamp(year int, month time.Month, today domain.Date) (int, time.Month) {
	if domain.NewDate(year, month, 1).Before(domain.NewDate(today.Year(), today.Month(), 1)) {
		return today.Year(), today.Month()
	}
	return year, month
}
