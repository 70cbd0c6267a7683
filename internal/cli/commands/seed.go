package commands

import (
	"fmt"
	"time"

	"parcel-tracker/internal/cli/seeder"
	"parcel-tracker/internal/core/config"
	"parcel-tracker/internal/core/database"
	"parcel-tracker/internal/features/parcels/adapters"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var (
		count  int
		userID string
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert generated parcels into the parcel store",
		Long: `Generate realistic parcels and insert them into Postgres.

Connection settings are read the same way as the API server
(.env in the working directory, then environment variables).

Examples:
  parcelctl seed --count 25 --user 3f6c0a52-7d1e-4e55-9d0b-0c2f5d9b1a11`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive")
			}

			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(".")
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, err := database.NewPool(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			parcels := seeder.NewGenerator(seed, time.Now()).Generate(count, userID)

			n, err := seeder.Insert(ctx, adapters.NewPostgresRepository(pool), parcels)
			if err != nil {
				printer.Warn("Inserted %d of %d parcels", n, count)
				return err
			}

			printer.Success("Inserted %d parcels", n)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "number of parcels to insert")
	cmd.Flags().StringVar(&userID, "user", "", "owner of the parcels (default: random per parcel)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")

	return cmd
}
