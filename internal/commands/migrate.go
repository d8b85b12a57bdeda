package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"imobicrm/internal/migration"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			_, db, err := setup()
			if err != nil {
				return err
			}

			migrator := migration.NewMigrator(db)
			pending, err := migrator.Pending()
			if err != nil {
				return fmt.Errorf("failed to get pending migrations: %w", err)
			}

			if len(pending) == 0 {
				fmt.Println("No pending migrations.")
				return nil
			}

			if dryRun {
				fmt.Println("Pending migrations:")
				for _, step := range pending {
					fmt.Printf("- %s (%s)\n", step.Name, step.Version)
				}
				return nil
			}

			if err := migrator.Up(); err != nil {
				return err
			}
			for _, step := range pending {
				fmt.Printf("Applied migration: %s (%s)\n", step.Name, step.Version)
			}
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Show pending migrations without executing them")

	return cmd
}
