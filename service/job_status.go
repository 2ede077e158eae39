package service

import (
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"job-dashboard/constant"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"strconv"
)

// ChangeStatus moves the job to req.ToStatusId and records the move in the
// activity log. The status update and the log row share one transaction.
func (s *jobService) ChangeStatus(ctx context.Context, actor dto.Actor, id uint, req dto.ChangeStatusRequest) (*entities.Job, error) {
	logger := zerolog.Ctx(ctx).With().Uint("job_id", id).Uint("to_status_id", req.ToStatusId).Logger()

	var job *entities.Job
	var previous uint
	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		var err error
		job, err = s.repo.FindJobForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrJobNotFound)
		}

		statuses, err := s.repo.ListJobStatuses(ctx)
		if err != nil {
			return err
		}
		graph, err := NewStatusGraph(statuses)
		if err != nil {
			return err
		}
		if _, ok := graph.Get(req.ToStatusId); !ok {
			return ErrStatusNotFound
		}
		if req.FromStatusId != nil && *req.FromStatusId != job.StatusID {
			return fmt.Errorf("%w: job is in status %d, not %d", ErrStatusConflict, job.StatusID, *req.FromStatusId)
		}
		if job.StatusID == req.ToStatusId {
			return fmt.Errorf("%w: job is already in status %d", ErrTransitionNotAllowed, job.StatusID)
		}
		if !s.cfg.AllowStatusJump && !graph.CanTransition(job.StatusID, req.ToStatusId) {
			return fmt.Errorf("%w: %d is not next to %d", ErrTransitionNotAllowed, req.ToStatusId, job.StatusID)
		}

		finishedAt := job.FinishedAt
		if graph.IsTerminal(req.ToStatusId) {
			if finishedAt == nil {
				now := s.now()
				finishedAt = &now
			}
		} else {
			finishedAt = nil
		}

		if err := s.repo.UpdateJobStatus(ctx, id, req.ToStatusId, finishedAt); err != nil {
			return notFound(err, ErrJobNotFound)
		}

		previous = job.StatusID
		return s.repo.CreateActivityLog(ctx, &entities.JobActivityLog{
			JobID:         id,
			FieldName:     constant.FieldNameStatus,
			ActivityType:  constant.ActivityTypeChangeStatus,
			PreviousValue: strconv.FormatUint(uint64(previous), 10),
			CurrentValue:  strconv.FormatUint(uint64(req.ToStatusId), 10),
			ModifiedByID:  actor.ID,
			ModifiedAt:    s.now(),
		})
	})
	if err != nil {
		logger.Warn().Err(err).Msg("status change rejected")
		return nil, err
	}

	logger.Info().Uint("from_status_id", previous).Uint("actor_id", actor.ID).Msg("job status changed")
	publishEvent(ctx, s.publisher, constant.EventJobStatusChanged, job, actor,
		strconv.FormatUint(uint64(previous), 10), strconv.FormatUint(uint64(req.ToStatusId), 10))

	return s.repo.FindJobDetail(ctx, id)
}
