package main

import (
	"github.com/lightbnb/backend/internal/lib/utils"
	"github.com/lightbnb/backend/internal/service"
	"github.com/spf13/cobra"
)

// searchFilters maps flag names to search filter keys.
var searchFilters = map[string]string{
	"city":       "city",
	"min-price":  "minimum_price_per_night",
	"max-price":  "maximum_price_per_night",
	"owner-id":   "owner_id",
	"min-rating": "minimum_rating",
}

func searchCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search properties",
		Example: "  lightbnb search --city van --min-price 50 --max-price 150\n" +
			"  lightbnb search --min-rating 4 --limit 5",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := make(map[string]string)
			for flagName, key := range searchFilters {
				if f := cmd.Flags().Lookup(flagName); f != nil && f.Changed {
					filters[key] = f.Value.String()
				}
			}

			return a.withServices(func(s *service.Services) error {
				results, err := s.Properties.SearchRaw(cmd.Context(), filters, limit)
				if err != nil {
					return err
				}
				return utils.PrintJSON(cmd.OutOrStdout(), results)
			})
		},
	}

	cmd.Flags().String("city", "", "substring of the city")
	cmd.Flags().String("min-price", "", "minimum price per night, in dollars")
	cmd.Flags().String("max-price", "", "maximum price per night, in dollars")
	cmd.Flags().String("owner-id", "", "owner user id")
	cmd.Flags().String("min-rating", "", "minimum average rating")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 uses the configured default)")

	return cmd
}
