package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/monocle-dev/trackr/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, database, closeStore, err := openStore(globalConfig)
		if err != nil {
			return err
		}
		defer closeStore()

		if database == nil {
			color.Yellow("The %s driver keeps no schema; nothing to migrate.", globalConfig.Database.Driver)
			return nil
		}

		if err := db.Migrate(database); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		for _, model := range db.Models() {
			fmt.Printf("%s %T\n", green("migrated"), model)
		}
		return nil
	},
}
