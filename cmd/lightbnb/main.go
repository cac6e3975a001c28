// Command lightbnb runs migrations, the background worker and one-shot
// data operations against the LightBnB store.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/lightbnb/backend/internal/config"
	"github.com/lightbnb/backend/internal/lib/utils"
	"github.com/lightbnb/backend/internal/logger"
	"github.com/lightbnb/backend/internal/repository"
	"github.com/lightbnb/backend/internal/server"
	"github.com/lightbnb/backend/internal/service"
	"github.com/lightbnb/backend/internal/sqlerr"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

// app carries what every command needs once configuration is loaded.
type app struct {
	cfg           *config.Config
	logger        zerolog.Logger
	loggerService *logger.LoggerService
}

// appError marks failures of the operation itself, as opposed to usage
// errors, so they are reported as structured errors.
type appError struct {
	err error
}

func (e *appError) Error() string { return e.err.Error() }
func (e *appError) Unwrap() error { return e.err }

func fail(err error) error {
	if err == nil {
		return nil
	}
	return &appError{err: err}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	err := rootCmd(a).ExecuteContext(ctx)
	if a.loggerService != nil {
		a.loggerService.Shutdown()
	}
	if err == nil {
		return
	}

	var appErr *appError
	if errors.As(err, &appErr) {
		a.logger.Error().Err(appErr.err).Msg("command failed")
		_ = utils.PrintJSON(os.Stderr, sqlerr.HandleError(appErr.err))
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

func rootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lightbnb",
		Short:         "LightBnB data tooling",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	cmd.AddCommand(
		migrateCmd(a),
		workerCmd(a),
		searchCmd(a),
		reservationsCmd(a),
		registerCmd(a),
		userCmd(a),
		addPropertyCmd(a),
		previewEmailCmd(),
	)

	return cmd
}

// load reads configuration and builds the logger. Every log line of a
// run carries the same run_id.
func (a *app) load() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.loggerService = logger.NewLoggerService(cfg.Observability)
	a.logger = logger.NewLoggerWithService(cfg.Observability, a.loggerService).
		With().
		Str("run_id", uuid.NewString()).
		Logger()

	return nil
}

// withServices builds the server and services, runs fn and shuts the
// server down.
func (a *app) withServices(fn func(*service.Services) error) error {
	srv, err := server.New(a.cfg, &a.logger, a.loggerService)
	if err != nil {
		return fail(err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			a.logger.Error().Err(shutdownErr).Msg("shutdown failed")
		}
	}()

	services := service.NewServices(srv, repository.NewRepositories(srv))
	return fail(fn(services))
}
