package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"stayinubud/internal/app"
	"stayinubud/internal/shared"
)

func villasCmd(cfg shared.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "villas",
		Short: "List the villas the store serves",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := buildStore(cfg)
			if err != nil {
				return err
			}

			villas, err := store.ListVillas(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME\tGUESTS\tPRICE/NIGHT")
			for _, v := range villas {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", v.Slug, v.Name, v.Capacity, app.FormatIDR(v.PricePerNight))
			}
			return w.Flush()
		},
	}
}
