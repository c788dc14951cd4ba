package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound means a slug resolved to no (published) record. Terminal
// for the navigation that hit it: never retried, never masked by the
// catalog fallback.
var ErrNotFound = errors.New("not found")

// Store is the remote-store surface the application consumes. Two
// implementations exist: the Supabase PostgREST adapter and the direct
// Postgres repository. The query shape is identical in both.
type Store interface {
	ListVillas(ctx context.Context) ([]Villa, error)
	GetVillaBySlug(ctx context.Context, slug string) (Villa, error)

	// ListBookings returns intervals for one villa that are still active
	// on the given day (end_date >= activeOn).
	ListBookings(ctx context.Context, villaID string, activeOn Date) ([]Booking, error)

	// Published posts only, newest publish date first.
	ListPosts(ctx context.Context) ([]Post, error)
	GetPostBySlug(ctx context.Context, slug string) (Post, error)

	// Insert-only lead capture.
	InsertInquiry(ctx context.Context, inq Inquiry) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
