package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"imobicrm/internal/migration"
)

func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := setup()
			if err != nil {
				return err
			}

			migrator := migration.NewMigrator(db)
			applied, err := migrator.AppliedVersions()
			if err != nil {
				return fmt.Errorf("failed to get applied migrations: %w", err)
			}

			fmt.Printf("%-16s  %-30s  %-8s\n", "Version", "Name", "Status")
			for _, step := range migration.Steps() {
				status := "Pending"
				if applied[step.Version] {
					status = "Applied"
				}
				fmt.Printf("%-16s  %-30s  %-8s\n", step.Version, step.Name, status)
			}
			return nil
		},
	}
}
