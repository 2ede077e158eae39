package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"job-dashboard/constant"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"job-dashboard/repository"
	"time"
)

type NotificationService interface {
	HandleJobEvent(ctx context.Context, event dto.JobEvent) error
	List(ctx context.Context, userId uint, unreadOnly bool) ([]*entities.UserNotification, error)
	MarkRead(ctx context.Context, userId uint, id uint) error
}

type notificationService struct {
	repo repository.Repository
}

// HandleJobEvent fans one job event out to the job's assignees, skipping the
// user who caused it. Events for jobs that no longer exist are dropped as
// non-retryable.
func (s *notificationService) HandleJobEvent(ctx context.Context, event dto.JobEvent) error {
	job, err := s.repo.FindJobDetail(ctx, event.JobId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Join(ErrNonRetryable, fmt.Errorf("job %d not found", event.JobId))
	}
	if err != nil {
		return err
	}

	recipients := make([]uint, 0, len(job.Assignees))
	for _, assignee := range job.Assignees {
		if assignee.ID != event.ActorId {
			recipients = append(recipients, assignee.ID)
		}
	}
	if len(recipients) == 0 {
		zerolog.Ctx(ctx).Debug().Str("event_id", event.EventId.String()).Msg("no recipients for job event")
		return nil
	}

	title, content := s.describe(ctx, event, job)
	jobId := job.ID
	created, err := s.repo.CreateNotification(ctx, &entities.Notification{
		EventID:     event.EventId,
		Type:        event.Type,
		JobID:       &jobId,
		Title:       title,
		Content:     content,
		CreatedByID: event.ActorId,
	}, recipients)
	if err != nil {
		return err
	}
	if !created {
		zerolog.Ctx(ctx).Info().Str("event_id", event.EventId.String()).Msg("job event already handled")
	}
	return nil
}

func (s *notificationService) describe(ctx context.Context, event dto.JobEvent, job *entities.Job) (string, string) {
	switch event.Type {
	case constant.EventJobCreated:
		return fmt.Sprintf("New job %s", job.No), fmt.Sprintf("You were assigned to %s.", job.DisplayName)
	case constant.EventJobStatusChanged:
		name := event.CurrentValue
		if job.Status != nil {
			name = job.Status.Name
		}
		return fmt.Sprintf("Job %s changed status", job.No), fmt.Sprintf("%s is now %s.", job.DisplayName, name)
	case constant.EventJobMembersChanged:
		return fmt.Sprintf("Job %s members changed", job.No), fmt.Sprintf("Assignees of %s were updated.", job.DisplayName)
	default:
		zerolog.Ctx(ctx).Warn().Str("type", event.Type.String()).Msg("unknown job event type")
		return fmt.Sprintf("Job %s updated", job.No), ""
	}
}

func (s *notificationService) List(ctx context.Context, userId uint, unreadOnly bool) ([]*entities.UserNotification, error) {
	return s.repo.ListUserNotifications(ctx, userId, unreadOnly)
}

func (s *notificationService) MarkRead(ctx context.Context, userId uint, id uint) error {
	if err := s.repo.MarkNotificationRead(ctx, userId, id, time.Now()); err != nil {
		return notFound(err, ErrNotificationNotFound)
	}
	return nil
}

func NewNotificationService(repo repository.Repository) NotificationService {
	return &notificationService{repo: repo}
}
