package main

import (
	"net/http"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	server "stayinubud/internal/adapters/http_server"
	"stayinubud/internal/adapters/localcache"
	"stayinubud/internal/adapters/observability"
	redisad "stayinubud/internal/adapters/redis"
	"stayinubud/internal/adapters/supabase"
	"stayinubud/internal/adapters/whatsapp"
	"stayinubud/internal/app"
	"stayinubud/internal/domain"
	"stayinubud/internal/shared"
	"stayinubud/internal/storage/postgres"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// store: direct SQL when a DSN is configured, PostgREST otherwise
	var store domain.Store
	if cfg.SupabaseDBDSN != "" {
		db, err := postgres.Connect(cfg.SupabaseDBDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connect failed")
		}
		store = postgres.New(db)
		log.Info().Msg("using direct postgres store")
	} else {
		client, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("supabase client init failed")
		}
		store = supabase.NewStore(client)
		log.Info().Str("url", cfg.SupabaseURL).Msg("using supabase PostgREST store")
	}

	// cache: shared Redis when configured, in-process LRU otherwise
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	} else {
		cache = localcache.New()
	}

	q := app.NewQueryService(store, cache, cfg.CacheTTL)
	b := app.NewBookingService(store, whatsapp.New(cfg.WhatsAppPhone))
	c := app.NewContactService(store)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, B: b, C: c})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
