package main

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"stayinubud/internal/catalog"
	"stayinubud/internal/domain"
	"stayinubud/internal/shared"
	"stayinubud/internal/storage/postgres"
)

// seedCmd pushes the static catalog into the store. Upserts go through
// the direct SQL path; the anon REST key cannot write the villas table.
func seedCmd(cfg shared.Config) *cobra.Command {
	var dsn string
	var workers int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert the static villa catalog into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				dsn = cfg.SupabaseDBDSN
			}
			if dsn == "" {
				return fmt.Errorf("a postgres DSN is required (--dsn or SUPABASE_DB_DSN)")
			}
			if workers < 1 {
				workers = 1
			}

			db, err := postgres.Connect(dsn)
			if err != nil {
				return err
			}
			defer db.Close()
			repo := postgres.New(db)

			villas := catalog.Villas()
			log.Info().Int("villas", len(villas)).Int("workers", workers).Msg("seeding catalog")

			ctx := cmd.Context()
			sem := semaphore.NewWeighted(int64(workers))
			var wg sync.WaitGroup
			var mu sync.Mutex
			failed := 0

			for _, v := range villas {
				// acquire before launching the goroutine; release inside it
				if err := sem.Acquire(ctx, 1); err != nil {
					return err
				}
				wg.Add(1)
				go func(v domain.Villa) {
					defer wg.Done()
					defer sem.Release(1)

					if err := repo.UpsertVilla(ctx, v); err != nil {
						log.Warn().Str("slug", v.Slug).Err(err).Msg("seed failed")
						mu.Lock()
						failed++
						mu.Unlock()
						return
					}
					log.Info().Str("slug", v.Slug).Msg("seed ok")
				}(v)
			}
			wg.Wait()

			if failed > 0 {
				return fmt.Errorf("%d of %d villas failed to seed", failed, len(villas))
			}
			log.Info().Msg("seeding completed")
			return nil
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "", "postgres connection string (defaults to SUPABASE_DB_DSN)")
	cmd.Flags().IntVar(&workers, "workers", cfg.SeedWorkers, "concurrent upserts")
	return cmd
}
