package main

import (
	"github.com/lightbnb/backend/internal/lib/utils"
	"github.com/lightbnb/backend/internal/service"
	"github.com/spf13/cobra"
)

func addPropertyCmd(a *app) *cobra.Command {
	var fields map[string]string

	cmd := &cobra.Command{
		Use:     "add-property",
		Short:   "Create a property from column=value pairs",
		Example: "  lightbnb add-property --field owner_id=1 --field title='Lake house' --field cost_per_night=9300 ...",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]any, len(fields))
			for k, v := range fields {
				values[k] = v
			}

			return a.withServices(func(s *service.Services) error {
				property, err := s.Properties.Create(cmd.Context(), values)
				if err != nil {
					return err
				}
				return utils.PrintJSON(cmd.OutOrStdout(), property)
			})
		},
	}

	cmd.Flags().StringToStringVar(&fields, "field", nil, "column=value, repeatable")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}
