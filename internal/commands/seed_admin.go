package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/monocle-dev/trackr/db"
	"github.com/monocle-dev/trackr/internal/config"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the admin account if none exists",
	Long: `Create an administrator account. Flags override ADMIN_EMAIL and
ADMIN_PASSWORD. Nothing happens when an admin already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password, err := adminCredentials(globalConfig, adminEmail, adminPassword)
		if err != nil {
			return err
		}

		store, database, closeStore, err := openStore(globalConfig)
		if err != nil {
			return err
		}
		defer closeStore()

		if database != nil {
			if err := db.Migrate(database); err != nil {
				return err
			}
		}

		created, err := seedAdmin(cmd.Context(), globalConfig, store, logger, email, password)
		if err != nil {
			return err
		}

		if !created {
			color.Yellow("An admin account already exists.")
			return nil
		}

		color.Green("Admin account %s created.", email)
		return nil
	},
}

// adminCredentials prefers the flag values over the configured ones.
func adminCredentials(cfg *config.Config, flagEmail, flagPassword string) (string, string, error) {
	email, password := cfg.Admin.Email, cfg.Admin.Password
	if flagEmail != "" {
		email = flagEmail
	}
	if flagPassword != "" {
		password = flagPassword
	}
	if email == "" || password == "" {
		return "", "", fmt.Errorf("admin email and password are required")
	}
	return email, password, nil
}

func seedAdmin(ctx context.Context, cfg *config.Config, store repository.Store, log zerolog.Logger, email, password string) (bool, error) {
	svc, _, err := buildServices(cfg, store, log)
	if err != nil {
		return false, err
	}
	return svc.Accounts.EnsureAdmin(ctx, email, password)
}

func init() {
	seedAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	seedAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
}
