// Package health runs periodic dependency checks (database, redis) on a
// cron schedule and keeps the latest result of each.
package health

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lightbnb/backend/internal/config"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// CheckFunc probes one dependency. It must honor ctx's deadline.
type CheckFunc func(ctx context.Context) error

// Status is the outcome of the latest run of a check.
type Status struct {
	Healthy      bool          `json:"healthy"`
	Error        string        `json:"error,omitempty"`
	ResponseTime time.Duration `json:"response_time"`
	CheckedAt    time.Time     `json:"checked_at"`
}

type Checker struct {
	cfg    config.HealthChecksConfig
	logger *zerolog.Logger
	nrApp  *newrelic.Application
	cron   *cron.Cron
	now    func() time.Time

	mu       sync.RWMutex
	checks   map[string]CheckFunc
	statuses map[string]Status
}

// NewChecker creates a Checker. nrApp may be nil.
func NewChecker(cfg config.HealthChecksConfig, logger *zerolog.Logger, nrApp *newrelic.Application) *Checker {
	return &Checker{
		cfg:      cfg,
		logger:   logger,
		nrApp:    nrApp,
		cron:     cron.New(),
		now:      time.Now,
		checks:   make(map[string]CheckFunc),
		statuses: make(map[string]Status),
	}
}

// Register adds a check. Only checks listed in the configuration run.
func (c *Checker) Register(name string, fn CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = fn
}

// Start runs every enabled check once and then on the configured interval.
func (c *Checker) Start(ctx context.Context) error {
	if !c.cfg.Enabled {
		c.logger.Info().Msg("health checks disabled")
		return nil
	}

	schedule := fmt.Sprintf("@every %s", c.cfg.Interval)
	if _, err := c.cron.AddFunc(schedule, func() { c.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule health checks: %w", err)
	}

	c.RunOnce(ctx)
	c.cron.Start()

	c.logger.Info().
		Dur("interval", c.cfg.Interval).
		Strs("checks", c.cfg.Checks).
		Msg("health checks started")

	return nil
}

// Stop stops scheduling and waits for a running round to finish.
func (c *Checker) Stop() {
	<-c.cron.Stop().Done()
}

// RunOnce runs all enabled checks sequentially and reports whether all
// of them passed.
func (c *Checker) RunOnce(ctx context.Context) bool {
	healthy := true

	for _, name := range c.cfg.Checks {
		c.mu.RLock()
		fn, ok := c.checks[name]
		c.mu.RUnlock()
		if !ok {
			continue
		}

		status := c.run(ctx, name, fn)
		if !status.Healthy {
			healthy = false
		}

		c.mu.Lock()
		c.statuses[name] = status
		c.mu.Unlock()
	}

	return healthy
}

func (c *Checker) run(ctx context.Context, name string, fn CheckFunc) Status {
	logger := c.logger.With().
		Str("operation", "health_check").
		Str("check", name).
		Logger()

	checkCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := c.now()
	err := fn(checkCtx)
	elapsed := c.now().Sub(start)

	status := Status{
		Healthy:      err == nil,
		ResponseTime: elapsed,
		CheckedAt:    start.UTC(),
	}

	if err != nil {
		status.Error = err.Error()

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msg("health check failed")

		if c.nrApp != nil {
			c.nrApp.RecordCustomEvent("HealthCheckError", map[string]any{
				"check_type":       name,
				"operation":        "health_check",
				"error_type":       name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
		}
		return status
	}

	logger.Debug().
		Dur("response_time", elapsed).
		Msg("health check passed")

	return status
}

// Statuses returns a copy of the latest status of every check that ran.
func (c *Checker) Statuses() map[string]Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]Status, len(c.statuses))
	for name, s := range c.statuses {
		out[name] = s
	}
	return out
}

// Unhealthy lists the checks whose latest run failed, sorted by name.
func (c *Checker) Unhealthy() []string {
	var names []string
	for name, s := range c.Statuses() {
		if !s.Healthy {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
