// AngelaMos | 2026
// keys.go

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/rental-api/internal/auth"
	"github.com/carterperez-dev/rental-api/internal/config"
)

func newKeysCmd(configPath *string) *cobra.Command {
	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage token signing keys",
	}

	var force bool

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an ES256 key pair at the configured paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jwtCfg, err := config.LoadJWT(*configPath)
			if err != nil {
				return err
			}

			privPath := jwtCfg.PrivateKeyPath
			pubPath := jwtCfg.PublicKeyPath

			if !force {
				if _, statErr := os.Stat(privPath); statErr == nil {
					return fmt.Errorf(
						"%s already exists, use --force to overwrite",
						privPath,
					)
				}
			}

			for _, p := range []string{privPath, pubPath} {
				if mkErr := os.MkdirAll(filepath.Dir(p), 0o750); mkErr != nil {
					return fmt.Errorf("create key directory: %w", mkErr)
				}
			}

			if err := auth.GenerateKeyPair(privPath, pubPath); err != nil {
				return err
			}

			cmd.Printf("wrote %s and %s\n", privPath, pubPath)
			return nil
		},
	}
	generateCmd.Flags().BoolVar(&force, "force", false, "overwrite existing keys")

	keysCmd.AddCommand(generateCmd)
	return keysCmd
}
