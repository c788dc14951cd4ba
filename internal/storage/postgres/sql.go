package postgres

const villaColumns = `
  id, slug, name, price_per_night, capacity, image_url, gallery,
  description, long_description, specs, amenities, location`

const listVillasSQL = `
SELECT` + villaColumns + `
FROM villas
ORDER BY slug`

const getVillaBySlugSQL = `
SELECT` + villaColumns + `
FROM villas
WHERE slug = $1`

// Seeding only; conflict target is the stable external identifier.
const upsertVillaSQL = `
INSERT INTO villas
  (id, slug, name, price_per_night, capacity, image_url, gallery,
   description, long_description, specs, amenities, location)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (slug) DO UPDATE SET
  name             = EXCLUDED.name,
  price_per_night  = EXCLUDED.price_per_night,
  capacity         = EXCLUDED.capacity,
  image_url        = EXCLUDED.image_url,
  gallery          = EXCLUDED.gallery,
  description      = EXCLUDED.description,
  long_description = EXCLUDED.long_description,
  specs            = EXCLUDED.specs,
  amenities        = EXCLUDED.amenities,
  location         = EXCLUDED.location,
  updated_at       = now()`

// Active intervals only: anything still blocking on or after the given day.
const listBookingsSQL = `
SELECT id, villa_id, start_date, end_date
FROM bookings
WHERE villa_id = $1 AND end_date >= $2
ORDER BY start_date, id`

const postColumns = `
  id, slug, title, excerpt, content, image_url, category, published_at, is_published`

const listPostsSQL = `
SELECT` + postColumns + `
FROM posts
WHERE is_published
ORDER BY published_at DESC`

const getPostBySlugSQL = `
SELECT` + postColumns + `
FROM posts
WHERE slug = $1 AND is_published`

const insertInquirySQL = `
INSERT INTO inquiries (name, email, message)
VALUES ($1, $2, $3)`
