package repository

import (
	"context"
	"gorm.io/gorm/clause"
	"job-dashboard/entities"
)

func (r *repo) FindUserPreference(ctx context.Context, userId uint) (*entities.UserPreference, error) {
	pref := &entities.UserPreference{}
	if err := r.GetDB(ctx).First(pref, "user_id = ?", userId).Error; err != nil {
		return nil, err
	}
	return pref, nil
}

// CreateUserPreference inserts the first preference row of a user. It
// reports false when a row for the user already exists.
func (r *repo) CreateUserPreference(ctx context.Context, pref *entities.UserPreference) (bool, error) {
	result := r.GetDB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(pref)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateUserPreference writes pref only while the stored version is still
// fromVersion. It reports false when another save got there first.
func (r *repo) UpdateUserPreference(ctx context.Context, pref *entities.UserPreference, fromVersion int) (bool, error) {
	result := r.GetDB(ctx).Model(pref).
		Where("version = ?", fromVersion).
		Select("version", "job_table", "updated_at").
		Updates(pref)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
