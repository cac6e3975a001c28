// Package server defines the Server struct that composes the app's main
// dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - redis client
//   - background job service (asynq) and its email client
//
// Everything is created in New and released in Shutdown; nothing is
// held in package-level state.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lightbnb/backend/internal/config"
	"github.com/lightbnb/backend/internal/database"
	"github.com/lightbnb/backend/internal/lib/email"
	"github.com/lightbnb/backend/internal/lib/health"
	"github.com/lightbnb/backend/internal/lib/job"
	"github.com/lightbnb/backend/internal/sqlerr"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/lightbnb/backend/internal/logger"
)

const redisPingTimeout = 5 * time.Second

// Server is the application container that holds shared resources.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService holds the New Relic application; its application is
	// nil when New Relic is disabled.
	LoggerService *loggerPkg.LoggerService

	DB *database.Database

	Redis *redis.Client

	// Job enqueues tasks; its workers only run after StartWorkers.
	Job *job.JobService

	Health *health.Checker

	workersStarted bool
}

// New constructs a Server and initializes core dependencies.
//
// The database is required: New fails with *errs.StoreUnavailableError if
// it cannot be reached. Redis is optional at startup; a failed ping is
// logged and job enqueues will fail until it is reachable.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, sqlerr.Wrap("database.connect", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	nrApp := application(loggerService)
	if nrApp != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without Redis")
	}

	emailClient := email.NewClient(cfg, logger)
	jobService := job.NewJobService(logger, cfg, emailClient, nrApp)

	checker := health.NewChecker(cfg.Observability.HealthChecks, logger, nrApp)
	checker.Register("database", db.Pool.Ping)
	checker.Register("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	})

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		Redis:         redisClient,
		Job:           jobService,
		Health:        checker,
	}, nil
}

func application(ls *loggerPkg.LoggerService) *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.GetApplication()
}

// StartWorkers starts the job workers and the periodic health checks.
func (s *Server) StartWorkers(ctx context.Context) error {
	if err := s.Job.Start(); err != nil {
		return fmt.Errorf("failed to start job server: %w", err)
	}
	s.workersStarted = true

	if err := s.Health.Start(ctx); err != nil {
		return err
	}

	s.Logger.Info().
		Str("env", s.Config.Primary.Env).
		Msg("workers started")

	return nil
}

// Shutdown releases every dependency created by New, in reverse order.
// ctx bounds the wait for running tasks and health checks.
func (s *Server) Shutdown(ctx context.Context) error {
	var errList []error

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Health.Stop()
		if s.workersStarted {
			s.Job.Stop()
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		errList = append(errList, fmt.Errorf("workers did not stop in time: %w", ctx.Err()))
	}

	if !s.workersStarted {
		if err := s.Job.Client.Close(); err != nil {
			errList = append(errList, fmt.Errorf("failed to close job client: %w", err))
		}
	}

	if err := s.Redis.Close(); err != nil {
		errList = append(errList, fmt.Errorf("failed to close redis client: %w", err))
	}

	if err := s.DB.Close(); err != nil {
		errList = append(errList, fmt.Errorf("failed to close database connection: %w", err))
	}

	if s.LoggerService != nil {
		s.LoggerService.Shutdown()
	}

	return errors.Join(errList...)
}
