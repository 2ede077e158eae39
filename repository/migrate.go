package repository

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"job-dashboard/entities"
)

func Models() []interface{} {
	return []interface{}{
		&entities.Department{},
		&entities.JobTitle{},
		&entities.JobType{},
		&entities.PaymentChannel{},
		&entities.User{},
		&entities.JobStatus{},
		&entities.Job{},
		&entities.JobAssignee{},
		&entities.JobActivityLog{},
		&entities.Comment{},
		&entities.Notification{},
		&entities.UserNotification{},
		&entities.UserPreference{},
	}
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := setupJoinTables(db); err != nil {
		return err
	}
	return db.WithContext(ctx).AutoMigrate(Models()...)
}

func intPtr(v int) *int {
	return &v
}

// DefaultStatuses is the chain seeded into an empty database.
func DefaultStatuses() []entities.JobStatus {
	return []entities.JobStatus{
		{Name: "In Progress", Color: "#1E88E5", Icon: "progress", Order: 1, NextStatusOrder: intPtr(2)},
		{Name: "Delivered", Color: "#43A047", Icon: "delivered", Order: 2, PrevStatusOrder: intPtr(1), NextStatusOrder: intPtr(3)},
		{Name: "Completed", Color: "#6D4C41", Icon: "completed", Order: 3, PrevStatusOrder: intPtr(2)},
	}
}

// Seed inserts the default status chain, job types and payment channels when
// their tables are empty.
func Seed(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedIfEmpty(tx, &entities.JobStatus{}, DefaultStatuses()); err != nil {
			return err
		}
		if err := seedIfEmpty(tx, &entities.JobType{}, []entities.JobType{
			{Code: "FV", Name: "Finance Visit"},
			{Code: "AR", Name: "Audit Report"},
		}); err != nil {
			return err
		}
		return seedIfEmpty(tx, &entities.PaymentChannel{}, []entities.PaymentChannel{
			{Name: "Bank Transfer", IsActive: true},
			{Name: "Cash", IsActive: true},
		})
	})
}

func seedIfEmpty[T any](tx *gorm.DB, model interface{}, rows []T) error {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if len(rows) == 0 {
		return errors.New("nothing to seed")
	}
	return tx.Create(&rows).Error
}
