package supabase

import (
	"context"
	"errors"
	"net/url"

	"stayinubud/internal/domain"
)

// Store implements domain.Store over the PostgREST client. The filter
// shapes mirror the storefront's queries field-for-field: slug equality
// lookups, the published gate with publish-date ordering, and the
// villa_id + end_date >= today booking filter.
type Store struct {
	c *Client
}

func NewStore(c *Client) *Store { return &Store{c: c} }

func (s *Store) ListVillas(ctx context.Context) ([]domain.Villa, error) {
	q := url.Values{}
	q.Set("select", "*")
	var out []domain.Villa
	if err := s.c.Select(ctx, "villas", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetVillaBySlug(ctx context.Context, slug string) (domain.Villa, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("slug", "eq."+slug)
	var out domain.Villa
	if err := s.c.SelectOne(ctx, "villas", q, &out); err != nil {
		return domain.Villa{}, mapErr(err)
	}
	return out, nil
}

func (s *Store) ListBookings(ctx context.Context, villaID string, activeOn domain.Date) ([]domain.Booking, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("villa_id", "eq."+villaID)
	q.Set("end_date", "gte."+activeOn.String())
	var out []domain.Booking
	if err := s.c.Select(ctx, "bookings", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ListPosts(ctx context.Context) ([]domain.Post, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("is_published", "eq.true")
	q.Set("order", "published_at.desc")
	var out []domain.Post
	if err := s.c.Select(ctx, "posts", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("slug", "eq."+slug)
	q.Set("is_published", "eq.true")
	var out domain.Post
	if err := s.c.SelectOne(ctx, "posts", q, &out); err != nil {
		return domain.Post{}, mapErr(err)
	}
	return out, nil
}

func (s *Store) InsertInquiry(ctx context.Context, inq domain.Inquiry) error {
	return s.c.Insert(ctx, "inquiries", inq)
}

func mapErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return domain.ErrNotFound
	}
	return err
}
