package repository

import (
	"context"
	"job-dashboard/entities"
)

func (r *repo) CreateActivityLog(ctx context.Context, log *entities.JobActivityLog) error {
	return r.GetDB(ctx).Omit("ModifiedBy").Create(log).Error
}

func (r *repo) ListActivityLogs(ctx context.Context, jobId uint) ([]*entities.JobActivityLog, error) {
	logs := make([]*entities.JobActivityLog, 0)
	err := r.GetDB(ctx).
		Preload("ModifiedBy").
		Where("job_id = ?", jobId).
		Order("modified_at ASC").
		Order("id ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
