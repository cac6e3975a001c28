package main

import (
	"errors"

	"github.com/lightbnb/backend/internal/lib/utils"
	"github.com/lightbnb/backend/internal/model"
	"github.com/lightbnb/backend/internal/service"
	"github.com/spf13/cobra"
)

func registerCmd(a *app) *cobra.Command {
	var in service.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user account and queue its welcome email",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(func(s *service.Services) error {
				user, err := s.Users.Register(cmd.Context(), in)
				if err != nil {
					return err
				}
				return utils.PrintJSON(cmd.OutOrStdout(), user)
			})
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (at least 8 characters)")

	return cmd
}

func userCmd(a *app) *cobra.Command {
	var (
		id    int64
		email string
	)

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up a user by id or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (id == 0) == (email == "") {
				return errors.New("exactly one of --id or --email is required")
			}

			return a.withServices(func(s *service.Services) error {
				var (
					user *model.User
					err  error
				)
				if id != 0 {
					user, err = s.Users.GetByID(cmd.Context(), id)
				} else {
					user, err = s.Users.GetByEmail(cmd.Context(), email)
				}
				if err != nil {
					return err
				}
				return utils.PrintJSON(cmd.OutOrStdout(), user)
			})
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "user id")
	cmd.Flags().StringVar(&email, "email", "", "email address")

	return cmd
}
