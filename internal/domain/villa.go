package domain

// VillaSpecs holds the structured display facts shown on a detail page.
type VillaSpecs struct {
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms float64 `json:"bathrooms"`
	PoolSize  string  `json:"pool_size"`
	Area      string  `json:"area"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the pair is usable for display. A missing or
// zero-zero location is skipped, never rendered.
func (l *Location) Valid() bool {
	if l == nil {
		return false
	}
	if l.Lat == 0 && l.Lng == 0 {
		return false
	}
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Villa is read-only from this system; rows are authored out-of-band in
// the remote store. Slug is the stable external identifier used in URLs.
type Villa struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Name            string     `json:"name"`
	PricePerNight   int64      `json:"price_per_night"` // IDR, whole rupiah
	Capacity        int        `json:"capacity"`
	ImageURL        string     `json:"image_url"`
	Gallery         []string   `json:"gallery"`
	Description     string     `json:"description"`
	LongDescription string     `json:"long_description"`
	Specs           VillaSpecs `json:"specs"`
	Amenities       []string   `json:"amenities"`
	Location        *Location  `json:"location,omitempty"`
}
