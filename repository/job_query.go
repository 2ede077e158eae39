package repository

import (
	"context"
	"gorm.io/gorm"
	"job-dashboard/constant"
	"job-dashboard/entities"
	"strings"
)

type SortField struct {
	Column string
	Desc   bool
}

type JobFilter struct {
	Search           string
	StatusId         uint
	TypeId           uint
	AssigneeId       uint
	PaymentChannelId uint
	Priority         constant.Priority
	HideFinished     bool
	Pinned           *bool
	Sort             []SortField
	Offset           int
	Limit            int
}

func (f JobFilter) apply(db *gorm.DB) *gorm.DB {
	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(jobs.no) LIKE ? OR LOWER(jobs.display_name) LIKE ? OR LOWER(jobs.client_name) LIKE ?)", like, like, like)
	}
	if f.StatusId != 0 {
		db = db.Where("jobs.status_id = ?", f.StatusId)
	}
	if f.TypeId != 0 {
		db = db.Where("jobs.type_id = ?", f.TypeId)
	}
	if f.PaymentChannelId != 0 {
		db = db.Where("jobs.payment_channel_id = ?", f.PaymentChannelId)
	}
	if f.Priority != "" {
		db = db.Where("jobs.priority = ?", f.Priority)
	}
	if f.AssigneeId != 0 {
		db = db.Where("EXISTS (SELECT 1 FROM job_assignees ja WHERE ja.job_id = jobs.id AND ja.user_id = ?)", f.AssigneeId)
	}
	if f.HideFinished {
		db = db.Where("jobs.finished_at IS NULL")
	}
	if f.Pinned != nil {
		db = db.Where("jobs.is_pinned = ?", *f.Pinned)
	}
	return db
}

// ListJobs returns one page of non-deleted jobs plus the total match count.
// Sort columns must already be validated by the caller.
func (r *repo) ListJobs(ctx context.Context, filter JobFilter) ([]*entities.Job, int64, error) {
	var total int64
	base := filter.apply(r.GetDB(ctx).Model(&entities.Job{}))
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := withJobRelations(filter.apply(r.GetDB(ctx).Model(&entities.Job{})))
	for _, field := range filter.Sort {
		direction := " ASC"
		if field.Desc {
			direction = " DESC"
		}
		query = query.Order("jobs." + field.Column + direction)
	}
	query = query.Order("jobs.id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	jobs := make([]*entities.Job, 0)
	if err := query.Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}
