package service

import (
	"context"
	"encoding/json"
	"github.com/rs/zerolog"
	"job-dashboard/constant"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"slices"
)

// AssignMembers adds req.UpdateMemberIds to the job. The previous member set
// is read from the database; the caller's PrevMemberIds is only compared
// against it. Nothing is logged when the set does not change.
func (s *jobService) AssignMembers(ctx context.Context, actor dto.Actor, id uint, req dto.AssignMemberRequest) (*entities.Job, error) {
	logger := zerolog.Ctx(ctx).With().Uint("job_id", id).Logger()

	var job *entities.Job
	var previous, current []uint
	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		var err error
		job, err = s.repo.FindJobForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrJobNotFound)
		}

		previous, err = s.repo.GetJobMemberIds(ctx, id)
		if err != nil {
			return err
		}
		if req.PrevMemberIds != nil && !slices.Equal(req.PrevMemberIds.Normalize(), previous) {
			logger.Warn().
				Interface("client_member_ids", req.PrevMemberIds.Normalize()).
				Interface("member_ids", previous).
				Msg("client member list is stale, using stored members")
		}

		added := make([]uint, 0)
		for _, userId := range req.UpdateMemberIds.Normalize() {
			if !slices.Contains(previous, userId) {
				added = append(added, userId)
			}
		}
		if len(added) == 0 {
			current = previous
			return nil
		}

		if err := s.ensureUsers(ctx, added); err != nil {
			return err
		}
		if err := s.repo.AddJobMembers(ctx, id, added); err != nil {
			return err
		}

		current = append(slices.Clone(previous), added...)
		slices.Sort(current)
		return s.logMembers(ctx, actor, id, constant.ActivityTypeAssignMember, previous, current)
	})
	if err != nil {
		return nil, err
	}

	if !slices.Equal(previous, current) {
		logger.Info().Interface("member_ids", current).Msg("job members assigned")
		publishEvent(ctx, s.publisher, constant.EventJobMembersChanged, job, actor, encodeIds(previous), encodeIds(current))
	}
	return s.repo.FindJobDetail(ctx, id)
}

func (s *jobService) UnassignMember(ctx context.Context, actor dto.Actor, id uint, userId uint) (*entities.Job, error) {
	var job *entities.Job
	var previous, current []uint
	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		var err error
		job, err = s.repo.FindJobForUpdate(ctx, id)
		if err != nil {
			return notFound(err, ErrJobNotFound)
		}

		previous, err = s.repo.GetJobMemberIds(ctx, id)
		if err != nil {
			return err
		}
		removed, err := s.repo.RemoveJobMember(ctx, id, userId)
		if err != nil {
			return err
		}
		if !removed {
			return ErrMemberNotFound
		}

		current = slices.DeleteFunc(slices.Clone(previous), func(v uint) bool { return v == userId })
		return s.logMembers(ctx, actor, id, constant.ActivityTypeUnassignMember, previous, current)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisher, constant.EventJobMembersChanged, job, actor, encodeIds(previous), encodeIds(current))
	return s.repo.FindJobDetail(ctx, id)
}

func (s *jobService) logMembers(ctx context.Context, actor dto.Actor, jobId uint, activity constant.ActivityType, previous, current []uint) error {
	return s.repo.CreateActivityLog(ctx, &entities.JobActivityLog{
		JobID:         jobId,
		FieldName:     constant.FieldNameAssignee,
		ActivityType:  activity,
		PreviousValue: encodeIds(previous),
		CurrentValue:  encodeIds(current),
		ModifiedByID:  actor.ID,
		ModifiedAt:    s.now(),
	})
}

func encodeIds(ids []uint) string {
	if ids == nil {
		ids = []uint{}
	}
	raw, _ := json.Marshal(ids)
	return string(raw)
}

func decodeIds(value string) []uint {
	var list dto.IdList
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil
	}
	return list
}
