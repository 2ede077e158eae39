package service

import (
	"context"
	"job-dashboard/constant"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"strconv"
)

// ActivityLog renders the audit trail of a job, oldest first. Status and
// member ids stored in the log are resolved to display metadata.
func (s *jobService) ActivityLog(ctx context.Context, id uint) ([]dto.ActivityLogEntry, error) {
	if _, err := s.repo.FindJobById(ctx, id); err != nil {
		return nil, notFound(err, ErrJobNotFound)
	}

	logs, err := s.repo.ListActivityLogs(ctx, id)
	if err != nil {
		return nil, err
	}

	statuses, err := s.repo.ListJobStatuses(ctx)
	if err != nil {
		return nil, err
	}
	statusById := make(map[uint]*entities.JobStatus, len(statuses))
	for _, status := range statuses {
		statusById[status.ID] = status
	}

	userById, err := s.memberLookup(ctx, logs)
	if err != nil {
		return nil, err
	}

	statusCache := make(map[uint]*dto.StatusSummary)
	resolveStatus := func(value string) *dto.StatusSummary {
		statusId, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil
		}
		if summary, ok := statusCache[uint(statusId)]; ok {
			return summary
		}
		summary := statusSummary(ctx, s.signer, statusById[uint(statusId)])
		statusCache[uint(statusId)] = summary
		return summary
	}
	resolveMembers := func(value string) []dto.UserSummary {
		ids := decodeIds(value)
		members := make([]dto.UserSummary, 0, len(ids))
		for _, userId := range ids {
			if user, ok := userById[userId]; ok {
				members = append(members, *userSummary(user))
			}
		}
		return members
	}

	entries := make([]dto.ActivityLogEntry, 0, len(logs))
	for _, log := range logs {
		entry := dto.ActivityLogEntry{
			ID:            log.ID,
			JobId:         log.JobID,
			FieldName:     log.FieldName,
			ActivityType:  log.ActivityType,
			PreviousValue: log.PreviousValue,
			CurrentValue:  log.CurrentValue,
			ModifiedAt:    log.ModifiedAt,
			ModifiedBy:    userSummary(log.ModifiedBy),
		}
		switch log.ActivityType {
		case constant.ActivityTypeChangeStatus:
			entry.PreviousStatus = resolveStatus(log.PreviousValue)
			entry.CurrentStatus = resolveStatus(log.CurrentValue)
		case constant.ActivityTypeAssignMember, constant.ActivityTypeUnassignMember:
			entry.PreviousMembers = resolveMembers(log.PreviousValue)
			entry.CurrentMembers = resolveMembers(log.CurrentValue)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *jobService) memberLookup(ctx context.Context, logs []*entities.JobActivityLog) (map[uint]*entities.User, error) {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0)
	for _, log := range logs {
		if log.ActivityType != constant.ActivityTypeAssignMember && log.ActivityType != constant.ActivityTypeUnassignMember {
			continue
		}
		for _, value := range []string{log.PreviousValue, log.CurrentValue} {
			for _, id := range decodeIds(value) {
				if _, ok := seen[id]; !ok {
					seen[id] = struct{}{}
					ids = append(ids, id)
				}
			}
		}
	}

	users, err := s.repo.FindUsersByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[uint]*entities.User, len(users))
	for _, user := range users {
		byId[user.ID] = user
	}
	return byId, nil
}
