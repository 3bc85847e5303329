// AngelaMos | 2026
// migrate.go

package main

import (
	"github.com/spf13/cobra"

	"github.com/carterperez-dev/rental-api/internal/core"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	for _, direction := range []core.MigrateDirection{core.MigrateUp, core.MigrateDown} {
		migrateCmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: "Apply all " + string(direction) + " migrations",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				cfg, logger, err := loadConfig(*configPath)
				if err != nil {
					return err
				}

				if err := core.Migrate(cfg.Database.URL, direction); err != nil {
					return err
				}

				logger.Info("migrations applied", "direction", direction)
				return nil
			},
		})
	}

	return migrateCmd
}
