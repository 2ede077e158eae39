package repository_test

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"job-dashboard/constant"
	"job-dashboard/entities"
	"job-dashboard/pkg/testdb"
	"job-dashboard/repository"
	"testing"
	"time"
)

func TestSeed_IsIdempotent(t *testing.T) {
	repo, db := testdb.NewRepo(t)
	ctx := context.Background()

	require.NoError(t, repository.Seed(ctx, db))

	statuses, err := repo.ListJobStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	assert.Equal(t, []string{"In Progress", "Delivered", "Completed"}, []string{statuses[0].Name, statuses[1].Name, statuses[2].Name})

	types, err := repo.ListJobTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 2)
}

func TestTransaction_RollsBackEveryWrite(t *testing.T) {
	repo, db := testdb.NewRepo(t)
	ctx := context.Background()
	user := testdb.CreateUser(t, db, "erin", constant.RoleStaff)
	job := testdb.CreateJob(t, db, "JOB2026-0001", 1, user.ID)

	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.UpdateJobStatus(ctx, job.ID, 2, nil))
		require.NoError(t, repo.AddJobMembers(ctx, job.ID, []uint{user.ID}))
		require.NoError(t, repo.CreateActivityLog(ctx, &entities.JobActivityLog{
			JobID:        job.ID,
			FieldName:    constant.FieldNameStatus,
			ActivityType: constant.ActivityTypeChangeStatus,
			ModifiedByID: user.ID,
			ModifiedAt:   time.Now(),
		}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := repo.FindJobById(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), stored.StatusID)

	members, err := repo.GetJobMemberIds(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	logs, err := repo.ListActivityLogs(ctx, job.ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestJobMutations_MissingRows(t *testing.T) {
	repo, _ := testdb.NewRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.UpdateJobStatus(ctx, 99, 2, nil), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.SoftDeleteJob(ctx, 99), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.MarkNotificationRead(ctx, 1, 99, time.Now()), gorm.ErrRecordNotFound)

	_, err := repo.FindJobForUpdate(ctx, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLastJobNumber_IncludesDeleted(t *testing.T) {
	repo, db := testdb.NewRepo(t)
	ctx := context.Background()
	testdb.CreateJob(t, db, "JOB2026-0009", 1, 1)
	deleted := testdb.CreateJob(t, db, "JOB2026-0010", 1, 1)
	testdb.CreateJob(t, db, "JOB2025-0042", 1, 1)
	require.NoError(t, repo.SoftDeleteJob(ctx, deleted.ID))

	last, err := repo.LastJobNumber(ctx, "JOB2026-")
	require.NoError(t, err)
	assert.Equal(t, "JOB2026-0010", last)

	last, err = repo.LastJobNumber(ctx, "JOB2027-")
	require.NoError(t, err)
	assert.Empty(t, last)

	jobs, total, err := repo.ListJobs(ctx, repository.JobFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, jobs, 2)
}

func TestLastJobNumber_EscapesWildcards(t *testing.T) {
	repo, db := testdb.NewRepo(t)
	ctx := context.Background()
	testdb.CreateJob(t, db, "AB2026-0005", 1, 1)
	testdb.CreateJob(t, db, "A%2026-0006", 1, 1)
	testdb.CreateJob(t, db, "A_2026-0002", 1, 1)

	last, err := repo.LastJobNumber(ctx, "A_2026-")
	require.NoError(t, err)
	assert.Equal(t, "A_2026-0002", last)

	last, err = repo.LastJobNumber(ctx, "A%")
	require.NoError(t, err)
	assert.Equal(t, "A%2026-0006", last)
}

func TestCreateJob_DuplicateNumberIsTranslated(t *testing.T) {
	_, db := testdb.NewRepo(t)
	testdb.CreateJob(t, db, "JOB2026-0001", 1, 1)

	err := db.Create(&entities.Job{No: "JOB2026-0001", StatusID: 1, CreatedByID: 1, Priority: constant.PriorityMedium}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserPreference_ConditionalWrites(t *testing.T) {
	repo, _ := testdb.NewRepo(t)
	ctx := context.Background()

	first := &entities.UserPreference{UserID: 4, Version: 1, JobTable: entities.JobTablePreference{VisibleColumns: []string{"no"}}}
	created, err := repo.CreateUserPreference(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateUserPreference(ctx, &entities.UserPreference{UserID: 4, Version: 1})
	require.NoError(t, err)
	assert.False(t, created)

	stale, err := repo.FindUserPreference(ctx, 4)
	require.NoError(t, err)
	fresh, err := repo.FindUserPreference(ctx, 4)
	require.NoError(t, err)

	fresh.Version = 2
	fresh.JobTable = entities.JobTablePreference{VisibleColumns: []string{"status"}}
	updated, err := repo.UpdateUserPreference(ctx, fresh, 1)
	require.NoError(t, err)
	assert.True(t, updated)

	stale.Version = 2
	stale.JobTable = entities.JobTablePreference{VisibleColumns: []string{"title"}}
	updated, err = repo.UpdateUserPreference(ctx, stale, 1)
	require.NoError(t, err)
	assert.False(t, updated)

	stored, err := repo.FindUserPreference(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Version)
	assert.Equal(t, []string{"status"}, stored.JobTable.VisibleColumns)
}

func TestMembers_AddIsIdempotent(t *testing.T) {
	repo, db := testdb.NewRepo(t)
	ctx := context.Background()
	a := testdb.CreateUser(t, db, "a", constant.RoleStaff)
	b := testdb.CreateUser(t, db, "b", constant.RoleStaff)
	job := testdb.CreateJob(t, db, "JOB2026-0001", 1, a.ID)

	require.NoError(t, repo.AddJobMembers(ctx, job.ID, []uint{b.ID, a.ID}))
	require.NoError(t, repo.AddJobMembers(ctx, job.ID, []uint{a.ID}))

	ids, err := repo.GetJobMemberIds(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID}, ids)

	removed, err := repo.RemoveJobMember(ctx, job.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.RemoveJobMember(ctx, job.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	detail, err := repo.FindJobDetail(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, detail.Assignees, 1)
	assert.Equal(t, b.ID, detail.Assignees[0].ID)
	require.NotNil(t, detail.Status)
	assert.Equal(t, "In Progress", detail.Status.Name)
}

func TestCreateNotification_OncePerEvent(t *testing.T) {
	repo, db := testdb.NewRepo(t)
	ctx := context.Background()
	a := testdb.CreateUser(t, db, "a", constant.RoleStaff)
	b := testdb.CreateUser(t, db, "b", constant.RoleStaff)
	eventId := uuid.New()

	created, err := repo.CreateNotification(ctx, &entities.Notification{
		EventID: eventId,
		Type:    constant.EventJobCreated,
		Title:   "New job",
	}, []uint{a.ID, b.ID})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateNotification(ctx, &entities.Notification{
		EventID: eventId,
		Type:    constant.EventJobCreated,
		Title:   "New job",
	}, []uint{a.ID, b.ID})
	require.NoError(t, err)
	assert.False(t, created)

	inbox, err := repo.ListUserNotifications(ctx, a.ID, true)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, eventId, inbox[0].Notification.EventID)
}
