package main

import (
	"context"

	"github.com/lightbnb/backend/internal/server"
	"github.com/spf13/cobra"
)

func workerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run background jobs and periodic health checks until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			srv, err := server.New(a.cfg, &a.logger, a.loggerService)
			if err != nil {
				return fail(err)
			}

			if err := srv.StartWorkers(ctx); err != nil {
				_ = srv.Shutdown(context.Background())
				return fail(err)
			}

			<-ctx.Done()
			a.logger.Info().Msg("shutting down worker")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return fail(srv.Shutdown(shutdownCtx))
		},
	}
}
