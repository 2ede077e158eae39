package service_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"job-dashboard/config"
	"job-dashboard/constant"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"job-dashboard/pkg/storage"
	"job-dashboard/pkg/testdb"
	"job-dashboard/repository"
	"job-dashboard/service"
	"sync"
	"testing"
)

type publishedEvent struct {
	routingKey string
	event      dto.JobEvent
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	event, _ := payload.(dto.JobEvent)
	p.events = append(p.events, publishedEvent{routingKey: routingKey, event: event})
	return nil
}

func (p *recordingPublisher) Events() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

type prefixSigner struct{}

func (prefixSigner) SignedURL(_ context.Context, object string) (string, error) {
	if object == "broken" {
		return "", errors.New("signing failed")
	}
	if storage.IsAbsoluteURL(object) {
		return object, nil
	}
	return "https://cdn.test/" + object, nil
}

type fixture struct {
	repo      repository.Repository
	db        *gorm.DB
	publisher *recordingPublisher
	jobs      service.JobService
	actor     dto.Actor
}

func newFixture(t *testing.T, cfg config.Jobs) *fixture {
	t.Helper()

	repo, db := testdb.NewRepo(t)
	if cfg.NumberPrefix == "" {
		cfg.NumberPrefix = "JOB"
	}
	publisher := &recordingPublisher{}
	user := testdb.CreateUser(t, db, "alice", constant.RoleManager)
	return &fixture{
		repo:      repo,
		db:        db,
		publisher: publisher,
		jobs:      service.NewJobService(repo, publisher, prefixSigner{}, cfg),
		actor:     dto.Actor{ID: user.ID, Email: user.Email, Role: user.Role},
	}
}

func (f *fixture) logs(t *testing.T, jobId uint) []entities.JobActivityLog {
	t.Helper()

	var logs []entities.JobActivityLog
	require.NoError(t, f.db.Where("job_id = ?", jobId).Order("id ASC").Find(&logs).Error)
	return logs
}

func (f *fixture) storedJob(t *testing.T, id uint) entities.Job {
	t.Helper()

	var job entities.Job
	require.NoError(t, f.db.Unscoped().First(&job, id).Error)
	return job
}

func ptr[T any](v T) *T {
	return &v
}
