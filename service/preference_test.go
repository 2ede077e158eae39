package service_test

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"job-dashboard/pkg/testdb"
	"job-dashboard/repository"
	"job-dashboard/service"
	"testing"
)

func TestPreference_DefaultsThenSave(t *testing.T) {
	repo, _ := testdb.NewRepo(t)
	prefs := service.NewPreferenceService(repo)
	ctx := context.Background()

	pref, err := prefs.GetJobTable(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, pref.Version)
	assert.Equal(t, service.DefaultJobTableColumns, pref.VisibleColumns)

	saved, err := prefs.SaveJobTable(ctx, 7, dto.JobTablePreference{
		Version:        0,
		VisibleColumns: []string{"no", "status"},
		Sort:           "dueAt:asc",
		HideFinished:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Version)

	loaded, err := prefs.GetJobTable(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	again, err := prefs.SaveJobTable(ctx, 7, dto.JobTablePreference{Version: 1, VisibleColumns: []string{"no"}})
	require.NoError(t, err)
	assert.Equal(t, 2, again.Version)
	assert.False(t, again.HideFinished)

	other, err := prefs.GetJobTable(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, 0, other.Version)
}

func TestPreference_StaleVersion(t *testing.T) {
	repo, _ := testdb.NewRepo(t)
	prefs := service.NewPreferenceService(repo)
	ctx := context.Background()

	_, err := prefs.SaveJobTable(ctx, 1, dto.JobTablePreference{VisibleColumns: []string{"no"}})
	require.NoError(t, err)

	_, err = prefs.SaveJobTable(ctx, 1, dto.JobTablePreference{VisibleColumns: []string{"status"}})
	assert.ErrorIs(t, err, service.ErrPreferenceConflict)

	pref, err := prefs.GetJobTable(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"no"}, pref.VisibleColumns)
}

func TestPreference_Validation(t *testing.T) {
	tests := []struct {
		name string
		pref dto.JobTablePreference
	}{
		{name: "unknown column", pref: dto.JobTablePreference{VisibleColumns: []string{"no", "salary"}}},
		{name: "no columns", pref: dto.JobTablePreference{VisibleColumns: []string{}}},
		{name: "duplicate columns", pref: dto.JobTablePreference{VisibleColumns: []string{"no", "no"}}},
		{name: "bad sort", pref: dto.JobTablePreference{VisibleColumns: []string{"no"}, Sort: "no:up"}},
		{name: "negative version", pref: dto.JobTablePreference{Version: -1, VisibleColumns: []string{"no"}}},
	}
	repo, _ := testdb.NewRepo(t)
	prefs := service.NewPreferenceService(repo)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := prefs.SaveJobTable(context.Background(), 3, tt.pref)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

// staleRepo answers preference reads with a snapshot taken before another
// request saved, as if that save landed between read and write.
type staleRepo struct {
	repository.Repository
	snapshot *entities.UserPreference
}

func (r *staleRepo) FindUserPreference(context.Context, uint) (*entities.UserPreference, error) {
	if r.snapshot == nil {
		return nil, gorm.ErrRecordNotFound
	}
	snapshot := *r.snapshot
	return &snapshot, nil
}

func TestPreference_ConcurrentUpdateConflicts(t *testing.T) {
	repo, _ := testdb.NewRepo(t)
	prefs := service.NewPreferenceService(repo)
	ctx := context.Background()

	_, err := prefs.SaveJobTable(ctx, 1, dto.JobTablePreference{VisibleColumns: []string{"no"}})
	require.NoError(t, err)
	snapshot, err := repo.FindUserPreference(ctx, 1)
	require.NoError(t, err)

	_, err = prefs.SaveJobTable(ctx, 1, dto.JobTablePreference{Version: 1, VisibleColumns: []string{"status"}})
	require.NoError(t, err)

	stale := service.NewPreferenceService(&staleRepo{Repository: repo, snapshot: snapshot})
	_, err = stale.SaveJobTable(ctx, 1, dto.JobTablePreference{Version: 1, VisibleColumns: []string{"title"}})
	assert.ErrorIs(t, err, service.ErrPreferenceConflict)

	pref, err := prefs.GetJobTable(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, pref.Version)
	assert.Equal(t, []string{"status"}, pref.VisibleColumns)
}

func TestPreference_ConcurrentFirstSaveConflicts(t *testing.T) {
	repo, _ := testdb.NewRepo(t)
	prefs := service.NewPreferenceService(repo)
	ctx := context.Background()

	_, err := prefs.SaveJobTable(ctx, 3, dto.JobTablePreference{VisibleColumns: []string{"status"}})
	require.NoError(t, err)

	stale := service.NewPreferenceService(&staleRepo{Repository: repo})
	_, err = stale.SaveJobTable(ctx, 3, dto.JobTablePreference{VisibleColumns: []string{"no"}})
	assert.ErrorIs(t, err, service.ErrPreferenceConflict)

	pref, err := prefs.GetJobTable(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, pref.Version)
	assert.Equal(t, []string{"status"}, pref.VisibleColumns)
}
