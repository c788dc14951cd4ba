package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"stayinubud/internal/availability"
	"stayinubud/internal/domain"
	"stayinubud/internal/shared"
)

func calendarCmd(cfg shared.Config) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "calendar <villa-slug>",
		Short: "Print a villa's availability grid for one month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := buildStore(cfg)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			villa, err := store.GetVillaBySlug(ctx, args[0])
			if err != nil {
				return err
			}

			today := domain.DateOf(time.Now())
			if year == 0 {
				year = today.Year()
			}
			if month == 0 {
				month = int(today.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month out of range: %d", month)
			}
			y, m := availability.Clamp(year, time.Month(month), today)

			bookings, err := store.ListBookings(ctx, villa.ID, today)
			if err != nil {
				return err
			}

			fmt.Printf("%s %d  (%s)\n", m, y, villa.Name)
			fmt.Println("Su Mo Tu We Th Fr Sa")
			var row []string
			for cell := range availability.MonthCells(y, m, bookings, today) {
				switch {
				case cell.Padding:
					row = append(row, "  ")
				case cell.Status == availability.StatusBooked:
					row = append(row, " x")
				case cell.Status == availability.StatusPast:
					row = append(row, " .")
				default:
					row = append(row, fmt.Sprintf("%2d", cell.Day))
				}
				if len(row) == 7 {
					fmt.Println(strings.Join(row, " "))
					row = row[:0]
				}
			}
			if len(row) > 0 {
				fmt.Println(strings.Join(row, " "))
			}
			fmt.Println("legend: number available, x booked, . past")
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (defaults to current)")
	cmd.Flags().IntVar(&month, "month", 0, "calendar month 1-12 (defaults to current)")
	return cmd
}
