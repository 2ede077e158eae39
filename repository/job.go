package repository

import (
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"job-dashboard/entities"
	"strings"
	"time"
)

func (r *repo) FindJobById(ctx context.Context, id uint) (*entities.Job, error) {
	job := &entities.Job{}
	err := r.GetDB(ctx).First(job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return job, nil
}

// FindJobForUpdate loads the job and, on postgres, locks its row until the
// surrounding transaction ends.
func (r *repo) FindJobForUpdate(ctx context.Context, id uint) (*entities.Job, error) {
	db := r.GetDB(ctx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	job := &entities.Job{}
	if err := db.First(job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *repo) FindJobDetail(ctx context.Context, id uint) (*entities.Job, error) {
	job := &entities.Job{}
	err := withJobRelations(r.GetDB(ctx)).First(job, "jobs.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return job, nil
}

func withJobRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Status").
		Preload("Type").
		Preload("PaymentChannel").
		Preload("Assignees", func(db *gorm.DB) *gorm.DB {
			return db.Order("users.id ASC")
		})
}

func (r *repo) CreateJob(ctx context.Context, job *entities.Job) error {
	return r.GetDB(ctx).Omit(clause.Associations).Create(job).Error
}

func (r *repo) UpdateJobFields(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.GetDB(ctx).Model(&entities.Job{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repo) UpdateJobStatus(ctx context.Context, id uint, statusId uint, finishedAt *time.Time) error {
	result := r.GetDB(ctx).Model(&entities.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status_id":   statusId,
		"finished_at": finishedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repo) SoftDeleteJob(ctx context.Context, id uint) error {
	result := r.GetDB(ctx).Delete(&entities.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LastJobNumber returns the highest job number with the prefix, soft-deleted
// ones included so numbers are never reused. It returns "" when there is none.
func (r *repo) LastJobNumber(ctx context.Context, prefix string) (string, error) {
	var numbers []string
	err := r.GetDB(ctx).Unscoped().Model(&entities.Job{}).
		Where(`no LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix)+"%").
		Order("LENGTH(no) DESC").
		Order("no DESC").
		Limit(1).
		Pluck("no", &numbers).Error
	if err != nil || len(numbers) == 0 {
		return "", err
	}
	return numbers[0], nil
}

func (r *repo) GetJobMemberIds(ctx context.Context, jobId uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := r.GetDB(ctx).Model(&entities.JobAssignee{}).
		Where("job_id = ?", jobId).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repo) AddJobMembers(ctx context.Context, jobId uint, userIds []uint) error {
	if len(userIds) == 0 {
		return nil
	}
	rows := make([]entities.JobAssignee, 0, len(userIds))
	for _, userId := range userIds {
		rows = append(rows, entities.JobAssignee{JobID: jobId, UserID: userId})
	}
	return r.GetDB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *repo) RemoveJobMember(ctx context.Context, jobId uint, userId uint) (bool, error) {
	result := r.GetDB(ctx).Where("job_id = ? AND user_id = ?", jobId, userId).Delete(&entities.JobAssignee{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
