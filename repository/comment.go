package repository

import (
	"context"
	"job-dashboard/entities"
)

func (r *repo) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.GetDB(ctx).Omit("Author").Create(comment).Error
}

func (r *repo) ListComments(ctx context.Context, jobId uint) ([]*entities.Comment, error) {
	comments := make([]*entities.Comment, 0)
	err := r.GetDB(ctx).
		Preload("Author").
		Where("job_id = ?", jobId).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}
