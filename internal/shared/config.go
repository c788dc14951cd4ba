package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// Remote store: PostgREST by default; a direct Postgres DSN (the
	// connection string every Supabase project also exposes) switches
	// the API to SQL.
	SupabaseURL   string
	SupabaseKey   string
	SupabaseRPS   int
	SupabaseDBDSN string

	RedisAddr string
	RedisPass string
	RedisDB   int

	WhatsAppPhone string
	CacheTTL      time.Duration
	SeedWorkers   int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		SupabaseURL:   env("SUPABASE_URL", "https://rxeoufnyjohjsmvszzcs.supabase.co"),
		SupabaseKey:   env("SUPABASE_ANON_KEY", ""),
		SupabaseRPS:   atoi("SUPABASE_RPS", 10),
		SupabaseDBDSN: env("SUPABASE_DB_DSN", ""),
		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		WhatsAppPhone: env("WHATSAPP_PHONE", "6281234567890"),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		SeedWorkers:   atoi("SEED_WORKERS", 4),
	}
	if c.SupabaseKey == "" && c.SupabaseDBDSN == "" {
		log.Warn().Msg("SUPABASE_ANON_KEY is empty and no SUPABASE_DB_DSN set; reads will fall back to the seed catalog")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
