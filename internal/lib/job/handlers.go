package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
)

// handleWelcomeEmailTask decodes the payload and sends the email.
// Returning an error makes asynq retry the task; malformed payloads are
// never retried.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	if j.nrApp != nil {
		txn := j.nrApp.StartTransaction("job/" + t.Type())
		defer txn.End()
		ctx = newrelic.NewContext(ctx, txn)
	}

	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		err = fmt.Errorf("failed to unmarshal welcome email payload: %v: %w", err, asynq.SkipRetry)
		j.noticeError(ctx, err)
		return err
	}

	logger := j.logger.With().
		Str("type", "welcome").
		Str("to", p.To).
		Logger()

	logger.Info().Msg("Processing welcome email task")

	if err := j.sender.SendWelcomeEmail(ctx, p.To, p.Name); err != nil {
		logger.Error().Err(err).Msg("Failed to send welcome email")
		j.noticeError(ctx, errors.WithStack(err))
		return err
	}

	logger.Info().Msg("Successfully sent welcome email")

	return nil
}

func (j *JobService) noticeError(ctx context.Context, err error) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.NoticeError(nrpkgerrors.Wrap(err))
	}
}
