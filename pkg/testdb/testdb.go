// Package testdb opens throwaway sqlite databases with the full schema and
// seed data for repository and service tests.
package testdb

import (
	"context"
	"fmt"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"job-dashboard/constant"
	"job-dashboard/entities"
	"job-dashboard/repository"
	"sync/atomic"
	"testing"
)

var counter atomic.Int64

// New returns a migrated and seeded in-memory database private to the test.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", counter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Transactions and plain reads must share the one connection sqlite allows
	// a writer.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	require.NoError(t, repository.Migrate(ctx, db))
	require.NoError(t, repository.Seed(ctx, db))
	return db
}

// NewRepo is New wrapped in a repository.
func NewRepo(t *testing.T) (repository.Repository, *gorm.DB) {
	t.Helper()

	db := New(t)
	repo, err := repository.NewRepo(db)
	require.NoError(t, err)
	return repo, db
}

func CreateUser(t *testing.T, db *gorm.DB, name string, role constant.Role) *entities.User {
	t.Helper()

	user := &entities.User{
		Email:       name + "@example.com",
		DisplayName: name,
		Avatar:      "avatars/" + name + ".png",
		Role:        role,
		IsActive:    true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateJob inserts a job directly, bypassing the service, in the given
// status.
func CreateJob(t *testing.T, db *gorm.DB, no string, statusId uint, createdBy uint) *entities.Job {
	t.Helper()

	job := &entities.Job{
		No:          no,
		DisplayName: "Job " + no,
		ClientName:  "Client " + no,
		StatusID:    statusId,
		Priority:    constant.PriorityMedium,
		CreatedByID: createdBy,
	}
	require.NoError(t, db.Omit("Assignees").Create(job).Error)
	return job
}
