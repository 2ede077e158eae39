package repository

import (
	"context"
	"job-dashboard/entities"
)

func (r *repo) ListJobStatuses(ctx context.Context) ([]*entities.JobStatus, error) {
	statuses := make([]*entities.JobStatus, 0)
	err := r.GetDB(ctx).Order("sort_order ASC").Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
