package main

import (
	"fmt"

	"github.com/lightbnb/backend/internal/lib/email"
	"github.com/spf13/cobra"
)

func previewEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview-email [template]",
		Short: "Render an email template with sample data",
		Args:  cobra.ExactArgs(1),
		// Rendering needs no configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			name := email.Template(args[0])

			data, ok := email.PreviewData[name]
			if !ok {
				return fmt.Errorf("no preview data for template %q", name)
			}

			body, err := email.Render(name, data)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
			return err
		},
	}
}
