package catalog_test

import (
	"testing"

	"stayinubud/internal/catalog"
)

func TestVillas_SeedShape(t *testing.T) {
	vs := catalog.Villas()
	if len(vs) != 4 {
		t.Fatalf("seed size = %d", len(vs))
	}

	slugs := map[string]bool{}
	ids := map[string]bool{}
	for _, v := range vs {
		if v.Slug == "" || v.Name == "" || v.ID == "" {
			t.Fatalf("incomplete villa: %+v", v)
		}
		if slugs[v.Slug] {
			t.Fatalf("duplicate slug %q", v.Slug)
		}
		if ids[v.ID] {
			t.Fatalf("duplicate id %q", v.ID)
		}
		slugs[v.Slug] = true
		ids[v.ID] = true
		if v.PricePerNight <= 0 || v.Capacity < 1 {
			t.Fatalf("bad pricing/capacity: %+v", v)
		}
		if len(v.Gallery) == 0 || len(v.Amenities) == 0 {
			t.Fatalf("empty gallery/amenities: %q", v.Slug)
		}
	}
}

func TestVillas_ReturnsCopy(t *testing.T) {
	first := catalog.Villas()
	first[0].Name = "mutated"

	second := catalog.Villas()
	if second[0].Name == "mutated" {
		t.Fatal("seed is shared with callers")
	}
}

func TestBySlug(t *testing.T) {
	v, ok := catalog.BySlug("villa-amandari")
	if !ok || v.Capacity != 4 || v.PricePerNight != 4_500_000 {
		t.Fatalf("lookup: ok=%v %+v", ok, v)
	}
	if _, ok := catalog.BySlug("no-such"); ok {
		t.Fatal("unknown slug resolved")
	}
}
