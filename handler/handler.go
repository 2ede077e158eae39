package handler

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/cenkalti/backoff/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"job-dashboard/dto"
	"job-dashboard/service"
)

type ServiceDependencies struct {
	JobService          service.JobService
	StatusService       service.StatusService
	PreferenceService   service.PreferenceService
	CommentService      service.CommentService
	NotificationService service.NotificationService
	LookupService       service.LookupService
}

// JobEventHandler consumes job events and turns them into notifications.
// Malformed messages are dead-lettered at once; events the service marks
// non-retryable are acked and dropped.
func JobEventHandler(ctx context.Context, msg amqp.Delivery, deps ServiceDependencies) error {
	var event dto.JobEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to unmarshal job event")
		return backoff.Permanent(err)
	}

	zerolog.Ctx(ctx).Info().
		Str("event_id", event.EventId.String()).
		Str("type", event.Type.String()).
		Uint("job_id", event.JobId).
		Msg("received job event")

	err := deps.NotificationService.HandleJobEvent(ctx, event)
	if errors.Is(err, service.ErrNonRetryable) {
		zerolog.Ctx(ctx).Warn().Err(err).Str("event_id", event.EventId.String()).Msg("dropping job event")
		return nil
	}
	return err
}
