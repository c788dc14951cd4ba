package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"stayinubud/internal/catalog"
	"stayinubud/internal/domain"
)

// QueryService serves all browse reads: cache-aside over the store, with
// the static catalog as the self-healing fallback for transient failures.
// Not-found is never masked by the fallback.
type QueryService struct {
	store    domain.Store
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(s domain.Store, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: s, cache: c, cacheTTL: ttl}
}

// ListVillas returns the remote catalog, or the static seed when the
// store errors or comes back empty. Fallback reads are never cached.
func (s *QueryService) ListVillas(ctx context.Context) ([]domain.Villa, error) {
	const key = "villas"
	var out []domain.Villa
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	vs, err := s.store.ListVillas(ctx)
	if err != nil || len(vs) == 0 {
		if err != nil {
			log.Warn().Err(err).Msg("villa list fetch failed, serving seed catalog")
		}
		return catalog.Villas(), nil
	}
	_ = s.cache.Set(ctx, key, vs, s.cacheTTL)
	return vs, nil
}

// GetVillaBySlug resolves a slug to exactly one villa. A store miss is
// terminal (ErrNotFound); a transient store failure falls back to the
// seed catalog before giving up.
func (s *QueryService) GetVillaBySlug(ctx context.Context, slug string) (domain.Villa, error) {
	key := "villa:" + slug
	var v domain.Villa
	if ok, _ := s.cache.Get(ctx, key, &v); ok {
		return v, nil
	}
	v, err := s.store.GetVillaBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Villa{}, domain.ErrNotFound
		}
		log.Warn().Err(err).Str("slug", slug).Msg("villa fetch failed, trying seed catalog")
		if sv, ok := catalog.BySlug(slug); ok {
			return sv, nil
		}
		return domain.Villa{}, domain.ErrNotFound
	}
	_ = s.cache.Set(ctx, key, v, s.cacheTTL)
	return v, nil
}

// ActiveBookings returns the villa's blocking intervals still active on
// the given day. A fetch failure degrades to an empty calendar, never an
// error; stale blocks are worse than optimistic ones for a lead funnel.
func (s *QueryService) ActiveBookings(ctx context.Context, villaID string, today domain.Date) []domain.Booking {
	bs, err := s.store.ListBookings(ctx, villaID, today)
	if err != nil {
		log.Warn().Err(err).Str("villa_id", villaID).Msg("booking fetch failed, calendar shows all available")
		return nil
	}
	return bs
}

// ListPosts returns published posts newest first; failures degrade to an
// empty journal.
func (s *QueryService) ListPosts(ctx context.Context) []domain.Post {
	const key = "posts"
	var out []domain.Post
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out
	}
	ps, err := s.store.ListPosts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("post list fetch failed, serving empty journal")
		return nil
	}
	// copy before caching so callers can't mutate the cached backing array
	_ = s.cache.Set(ctx, key, clonePosts(ps), s.cacheTTL)
	return ps
}

// GetPostBySlug returns a post only when it exists and is published; an
// unpublished or missing slug, or any fetch failure, reads as not-found;
// the storefront treats all three identically.
func (s *QueryService) GetPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	key := "post:" + slug
	var p domain.Post
	if ok, _ := s.cache.Get(ctx, key, &p); ok {
		return p, nil
	}
	p, err := s.store.GetPostBySlug(ctx, slug)
	if err != nil || !p.IsPublished {
		return domain.Post{}, domain.ErrNotFound
	}
	_ = s.cache.Set(ctx, key, p, s.cacheTTL)
	return p, nil
}

func clonePosts(in []domain.Post) []domain.Post {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Post, len(in))
	copy(out, in)
	return out
}
