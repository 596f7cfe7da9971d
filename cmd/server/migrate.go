package main

import (
	"errors"

	"github.com/spf13/cobra"

	"domainwatch/internal/config"
)

func newMigrateCmd(c *cli) *cobra.Command {
	var status bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Store != config.StorePostgres {
				return errors.New("migrate needs store=postgres")
			}
			_, db, err := openStore(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			if status {
				return db.MigrationStatus(cmd.Context())
			}
			return db.Migrate(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "print the migration status instead of applying")
	return cmd
}
