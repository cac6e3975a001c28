package main

import (
	"github.com/lightbnb/backend/internal/lib/utils"
	"github.com/lightbnb/backend/internal/service"
	"github.com/spf13/cobra"
)

func reservationsCmd(a *app) *cobra.Command {
	var (
		guestID int64
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List a guest's reservations by start date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(func(s *service.Services) error {
				reservations, err := s.Reservations.ListForGuest(cmd.Context(), guestID, limit)
				if err != nil {
					return err
				}
				return utils.PrintJSON(cmd.OutOrStdout(), reservations)
			})
		},
	}

	cmd.Flags().Int64Var(&guestID, "guest-id", 0, "guest user id")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 uses the configured default)")
	_ = cmd.MarkFlagRequired("guest-id")

	return cmd
}
