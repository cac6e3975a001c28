package main

import (
	"github.com/lightbnb/backend/internal/database"
	"github.com/spf13/cobra"
)

func migrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fail(database.Migrate(cmd.Context(), &a.logger, a.cfg))
		},
	}
}
