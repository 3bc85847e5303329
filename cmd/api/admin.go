// AngelaMos | 2026
// admin.go

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/rental-api/internal/core"
	"github.com/carterperez-dev/rental-api/internal/user"
)

// newAdminCmd bootstraps admin accounts, which self-registration never
// creates.
func newAdminCmd(configPath *string) *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative account tasks",
	}

	var req user.CreateUserRequest

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user with the admin role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Password == "" {
				req.Password = os.Getenv("ADMIN_PASSWORD")
			}
			req.Role = user.RoleAdmin

			if err := core.NewValidator().Struct(req); err != nil {
				return fmt.Errorf("invalid admin account: %s", core.FormatValidationError(err))
			}

			cfg, logger, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			db, err := core.NewDatabase(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close() //nolint:errcheck // process exits right after

			hasher, err := core.NewPasswordHasher(cfg.Password)
			if err != nil {
				return err
			}

			svc := user.NewService(user.NewRepository(db.DB), hasher, nil, 0)

			created, err := svc.Create(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}

			logger.Info("admin account created",
				"user_id", created.ID,
				"username", created.Username,
				"admin", created.IsAdmin(),
			)
			return nil
		},
	}

	createCmd.Flags().StringVar(&req.Username, "username", "", "admin username")
	createCmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	createCmd.Flags().StringVar(
		&req.Password,
		"password",
		"",
		"admin password (defaults to $ADMIN_PASSWORD)",
	)

	adminCmd.AddCommand(createCmd)
	return adminCmd
}
