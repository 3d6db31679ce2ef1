package commands

import (
	"os"

	"github.com/monocle-dev/trackr/internal/config"
	"github.com/monocle-dev/trackr/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	globalConfig *config.Config
	logger       zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "trackr",
	Short: "Trackr - multi-tenant project and issue tracker",
	Long: `Trackr serves the project tracker REST API. Each user owns projects,
and each project holds issues and notes visible only to its owner.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		l, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
		if err != nil {
			return err
		}

		globalConfig = cfg
		logger = l
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAdminCmd)
}
