// villactl is the operations CLI: seed the villa catalog into the store,
// list what the store serves, and eyeball a villa's availability grid.
package main

import (
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"stayinubud/internal/adapters/observability"
	"stayinubud/internal/adapters/supabase"
	"stayinubud/internal/domain"
	"stayinubud/internal/shared"
	"stayinubud/internal/storage/postgres"
)

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	root := &cobra.Command{
		Use:           "villactl",
		Short:         "StayinUBUD store operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(seedCmd(cfg))
	root.AddCommand(villasCmd(cfg))
	root.AddCommand(calendarCmd(cfg))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildStore picks the same store the API would: SQL with a DSN,
// PostgREST otherwise.
func buildStore(cfg shared.Config) (domain.Store, error) {
	if cfg.SupabaseDBDSN != "" {
		db, err := postgres.Connect(cfg.SupabaseDBDSN)
		if err != nil {
			return nil, err
		}
		return postgres.New(db), nil
	}
	client, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseRPS)
	if err != nil {
		return nil, err
	}
	return supabase.NewStore(client), nil
}
