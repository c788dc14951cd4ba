// Package catalog carries the static villa seed: the fallback served when
// the remote store is unreachable or empty, and the input for villactl seed.
package catalog

import "stayinubud/internal/domain"

// Villas returns a fresh copy of the seed so callers can't mutate it.
func Villas() []domain.Villa {
	out := make([]domain.Villa, len(seed))
	copy(out, seed)
	return out
}

// BySlug looks a seed villa up by slug; used as the transient-failure
// fallback for detail lookups.
func BySlug(slug string) (domain.Villa, bool) {
	for _, v := range seed {
		if v.Slug == slug {
			return v, true
		}
	}
	return domain.Villa{}, false
}

var seed = []domain.Villa{
	{
		ID:            "1",
		Slug:          "villa-amandari",
		Name:          "Villa Amandari",
		PricePerNight: 4500000,
		Capacity:      4,
		ImageURL:      "https://images.unsplash.com/photo-1572331165267-854da2b00ca1?q=80&w=2070&auto=format&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1540541338287-41700207dee6?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1560185007-c5ca9d2c014d?q=80&w=2069&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1584622650111-993a426fbf0a?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1576013551627-5cc20b368619?q=80&w=2070&auto=format&fit=crop",
		},
		Description:     "Cliffside serenity overlooking the Ayung River valley.",
		LongDescription: "Perched on the edge of the Ayung River gorge, Villa Amandari is a testament to Balinese elegance. Designed to disappear into the jungle, the open-air architecture allows the breeze to flow freely. Every corner offers a view of the lush canopy. The infinity pool seems to drop straight into the river below, offering a swimming experience unlike any other.",
		Specs:           domain.VillaSpecs{Bedrooms: 2, Bathrooms: 2.5, PoolSize: "12m x 4m", Area: "350 sqm"},
		Amenities:       []string{"River View", "Infinity Pool", "Butler Service", "Floating Breakfast"},
		Location:        &domain.Location{Lat: -8.4900, Lng: 115.2400},
	},
	{
		ID:            "2",
		Slug:          "the-green-flow",
		Name:          "The Green Flow",
		PricePerNight: 3200000,
		Capacity:      2,
		ImageURL:      "https://images.unsplash.com/photo-1600596542815-e328701102b9?q=80&w=2069&auto=format&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1598928506311-c55ded91a20c?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1570213489059-0aac6626cade?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1600210492486-724fe5c67fb0?q=80&w=1974&auto=format&fit=crop",
		},
		Description:     "Deep jungle immersion with sustainable bamboo architecture.",
		LongDescription: "Constructed entirely from locally sourced bamboo, The Green Flow is a masterpiece of sustainable design. The structure curves and bends with the landscape, creating organic spaces that feel alive. Wake up to the sound of birds and the rustle of leaves. This is not just a stay; it is a communion with nature.",
		Specs:           domain.VillaSpecs{Bedrooms: 1, Bathrooms: 1, PoolSize: "Plunge Pool", Area: "120 sqm"},
		Amenities:       []string{"Bamboo Architecture", "Forest Bathing", "Organic Garden", "Private Yoga Deck"},
		Location:        &domain.Location{Lat: -8.5200, Lng: 115.2700},
	},
	{
		ID:            "3",
		Slug:          "sanctuary-hidden",
		Name:          "Sanctuary Hidden",
		PricePerNight: 6800000,
		Capacity:      6,
		ImageURL:      "https://images.unsplash.com/photo-1580587771525-78b9dba3b91d?q=80&w=1974&auto=format&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1613977257363-707ba9348227?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1613545325278-f24b0cae1224?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?q=80&w=2071&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1596178060671-7a80dc8059ea?q=80&w=2069&auto=format&fit=crop",
		},
		Description:     "Private waterfall access and expansive rice terrace views.",
		LongDescription: "Hidden away from the maps, this sanctuary offers exclusive access to a private waterfall. The villa sits atop a ridge, commanding 360-degree views of the emerald rice terraces. Interiors feature reclaimed teak and modern art, blending tradition with contemporary luxury.",
		Specs:           domain.VillaSpecs{Bedrooms: 3, Bathrooms: 3, PoolSize: "15m x 5m", Area: "500 sqm"},
		Amenities:       []string{"Private Waterfall", "Rice Terrace View", "Chef's Kitchen", "Media Room"},
		Location:        &domain.Location{Lat: -8.4800, Lng: 115.2800},
	},
	{
		ID:            "4",
		Slug:          "estate-kayon",
		Name:          "Estate Kayon",
		PricePerNight: 9500000,
		Capacity:      8,
		ImageURL:      "https://images.unsplash.com/photo-1540541338287-41700207dee6?q=80&w=2070&auto=format&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?q=80&w=2053&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1600566753197-8745131b8027?q=80&w=2070&auto=format&fit=crop",
		},
		Description:     "The ultimate executive retreat for private gatherings.",
		LongDescription: "Estate Kayon is the pinnacle of luxury in Ubud. Designed for large families or executive retreats, it features expansive living areas, a dedicated staff of six, and a spa pavilion. The architecture is grand yet grounded, using massive stone blocks and soaring thatched roofs.",
		Specs:           domain.VillaSpecs{Bedrooms: 4, Bathrooms: 5, PoolSize: "20m Lap Pool", Area: "850 sqm"},
		Amenities:       []string{"Full Staff", "Spa Pavilion", "Gym", "Wine Cellar"},
		Location:        &domain.Location{Lat: -8.5300, Lng: 115.2500},
	},
}
