// Package supabase is a thin PostgREST client for the hosted project:
// table-scoped selects, single-row lookups, and inserts, with client-side
// rate limiting and bounded retries.
package supabase

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"stayinubud/internal/adapters/observability"
)

var (
	ErrNotFound     = errors.New("supabase: not found")
	ErrUnauthorized = errors.New("supabase: unauthorized")
	ErrForbidden    = errors.New("supabase: forbidden")
)

type Client struct {
	base string // https://<project>.supabase.co
	key  string // anon key; sent as apikey and bearer token
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if key == "" {
		// Requests will come back 401 and browse reads degrade to the
		// seed catalog; writes stay broken until a key is configured.
		log.Warn().Msg("supabase anon key is empty")
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		key:  key,
		hc:   &http.Client{Timeout: 15 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (c *Client) tableURL(table string, q url.Values) string {
	u := c.base + "/rest/v1/" + table
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// Select fetches all rows matching the PostgREST filter into out (a slice
// pointer).
func (c *Client) Select(ctx context.Context, table string, q url.Values, out any) error {
	return c.do(ctx, http.MethodGet, table, c.tableURL(table, q), nil, "", out)
}

// SelectOne fetches exactly one row by asking PostgREST for a singular
// object; zero rows come back as ErrNotFound.
func (c *Client) SelectOne(ctx context.Context, table string, q url.Values, out any) error {
	return c.do(ctx, http.MethodGet, table, c.tableURL(table, q), nil, "application/vnd.pgrst.object+json", out)
}

// Insert writes one row. Prefer: return=minimal keeps the response empty,
// matching the storefront's write path.
func (c *Client) Insert(ctx context.Context, table string, row any) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode %s row: %w", table, err)
	}
	return c.do(ctx, http.MethodPost, table, c.tableURL(table, nil), body, "", nil)
}

// do performs one logical request with rate limiting and retries on 429
// and transient 5xx, honoring Retry-After when provided.
func (c *Client) do(ctx context.Context, method, table, u string, body []byte, accept string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		var rdr io.Reader
		if body != nil {
			rdr = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, rdr)
		if err != nil {
			return err
		}
		if c.key != "" {
			req.Header.Set("apikey", c.key)
			req.Header.Set("Authorization", "Bearer "+c.key)
		}
		req.Header.Set("User-Agent", "stayinubud/1.0")
		if accept != "" {
			req.Header.Set("Accept", accept)
		} else {
			req.Header.Set("Accept", "application/json")
		}
		if method == http.MethodPost {
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Prefer", "return=minimal")
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			return lastErr
		}
		observability.ObserveExternal("supabase", table, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			if out == nil {
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				return nil
			}
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound, http.StatusNotAcceptable:
			// PostgREST answers 406 to a singular-object request that
			// matched no rows.
			resp.Body.Close()
			return ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("supabase %d on %s", resp.StatusCode, table)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("supabase %d on %s: %s", resp.StatusCode, table, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date); 0 when absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles per attempt (200ms, 400ms, 800ms...) with up to +50%
// jitter from crypto/rand, which is safe under concurrency.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
