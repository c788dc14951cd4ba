// Package postgres is the direct-SQL store: the same read/insert surface
// as the PostgREST adapter against the project's Postgres connection
// string, plus the villa upsert the seeder needs.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"stayinubud/internal/domain"
)

type Repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) *Repo { return &Repo{db: db} }

// Connect opens and pings a Supabase Postgres DSN.
func Connect(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

func (r *Repo) ListVillas(ctx context.Context) ([]domain.Villa, error) {
	rows, err := r.db.QueryContext(ctx, listVillasSQL)
	if err != nil {
		return nil, fmt.Errorf("list villas: %w", err)
	}
	defer rows.Close()

	var out []domain.Villa
	for rows.Next() {
		v, err := scanVilla(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list villas: %w", err)
	}
	return out, nil
}

func (r *Repo) GetVillaBySlug(ctx context.Context, slug string) (domain.Villa, error) {
	rows, err := r.db.QueryContext(ctx, getVillaBySlugSQL, slug)
	if err != nil {
		return domain.Villa{}, fmt.Errorf("get villa %q: %w", slug, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Villa{}, fmt.Errorf("get villa %q: %w", slug, err)
		}
		return domain.Villa{}, domain.ErrNotFound
	}
	return scanVilla(rows)
}

// scanVilla reads one row; jsonb columns land as raw bytes first.
func scanVilla(rows *sql.Rows) (domain.Villa, error) {
	var v domain.Villa
	var gallery, specs, amenities, location []byte
	if err := rows.Scan(
		&v.ID, &v.Slug, &v.Name, &v.PricePerNight, &v.Capacity, &v.ImageURL,
		&gallery, &v.Description, &v.LongDescription, &specs, &amenities, &location,
	); err != nil {
		return domain.Villa{}, fmt.Errorf("scan villa: %w", err)
	}
	_ = json.Unmarshal(gallery, &v.Gallery)
	_ = json.Unmarshal(specs, &v.Specs)
	_ = json.Unmarshal(amenities, &v.Amenities)
	if len(location) > 0 {
		var loc domain.Location
		if json.Unmarshal(location, &loc) == nil && loc.Valid() {
			v.Location = &loc
		}
	}
	return v, nil
}

func (r *Repo) UpsertVilla(ctx context.Context, v domain.Villa) error {
	gallery, _ := json.Marshal(v.Gallery)
	specs, _ := json.Marshal(v.Specs)
	amenities, _ := json.Marshal(v.Amenities)
	var location any
	if v.Location.Valid() {
		b, _ := json.Marshal(v.Location)
		location = string(b)
	}
	_, err := r.db.ExecContext(ctx, upsertVillaSQL,
		v.ID, v.Slug, v.Name, v.PricePerNight, v.Capacity, v.ImageURL,
		string(gallery), v.Description, v.LongDescription,
		string(specs), string(amenities), location,
	)
	if err != nil {
		return fmt.Errorf("upsert villa %q: %w", v.Slug, err)
	}
	return nil
}

func (r *Repo) ListBookings(ctx context.Context, villaID string, activeOn domain.Date) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL, villaID, activeOn.String())
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", villaID, err)
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var start, end time.Time
		if err := rows.Scan(&b.ID, &b.VillaID, &start, &end); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.StartDate = domain.DateOf(start)
		b.EndDate = domain.DateOf(end)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", villaID, err)
	}
	return out, nil
}

func (r *Repo) ListPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, listPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return out, nil
}

func (r *Repo) GetPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, getPostBySlugSQL, slug)
	if err != nil {
		return domain.Post{}, fmt.Errorf("get post %q: %w", slug, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Post{}, fmt.Errorf("get post %q: %w", slug, err)
		}
		return domain.Post{}, domain.ErrNotFound
	}
	return scanPost(rows)
}

func scanPost(rows *sql.Rows) (domain.Post, error) {
	var p domain.Post
	var excerpt, content, imageURL, category sql.NullString
	if err := rows.Scan(
		&p.ID, &p.Slug, &p.Title, &excerpt, &content, &imageURL, &category,
		&p.PublishedAt, &p.IsPublished,
	); err != nil {
		return domain.Post{}, fmt.Errorf("scan post: %w", err)
	}
	p.Excerpt = excerpt.String
	p.Content = content.String
	p.ImageURL = imageURL.String
	p.Category = category.String
	return p, nil
}

func (r *Repo) InsertInquiry(ctx context.Context, inq domain.Inquiry) error {
	_, err := r.db.ExecContext(ctx, insertInquirySQL, inq.Name, inq.Email, inq.Message)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}
