package service

import (
	"context"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"job-dashboard/constant"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"time"
)

// EventPublisher delivers job events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// ThumbnailSigner turns a stored thumbnail reference into a URL a browser
// can load.
type ThumbnailSigner interface {
	SignedURL(ctx context.Context, object string) (string, error)
}

func publishEvent(ctx context.Context, publisher EventPublisher, eventType constant.EventType, job *entities.Job, actor dto.Actor, previous, current string) {
	if publisher == nil {
		return
	}
	event := dto.JobEvent{
		EventId:       uuid.New(),
		Type:          eventType,
		JobId:         job.ID,
		JobNo:         job.No,
		ActorId:       actor.ID,
		PreviousValue: previous,
		CurrentValue:  current,
		OccurredAt:    time.Now().UTC(),
	}
	// The mutation is already committed; a lost event only costs a notification.
	if err := publisher.Publish(ctx, eventType.String(), event); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("event", eventType.String()).
			Uint("job_id", job.ID).
			Msg("failed to publish job event")
	}
}

func statusSummary(ctx context.Context, signer ThumbnailSigner, status *entities.JobStatus) *dto.StatusSummary {
	if status == nil {
		return nil
	}
	summary := &dto.StatusSummary{
		ID:           status.ID,
		Name:         status.Name,
		Color:        status.Color,
		Icon:         status.Icon,
		ThumbnailUrl: status.Thumbnail,
		Order:        status.Order,
	}
	if signer != nil && status.Thumbnail != "" {
		url, err := signer.SignedURL(ctx, status.Thumbnail)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Uint("status_id", status.ID).Msg("failed to sign status thumbnail")
		} else {
			summary.ThumbnailUrl = url
		}
	}
	return summary
}

func userSummary(user *entities.User) *dto.UserSummary {
	if user == nil {
		return nil
	}
	return &dto.UserSummary{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Avatar:      user.Avatar,
	}
}
