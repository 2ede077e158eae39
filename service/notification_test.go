package service_test

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"job-dashboard/config"
	"job-dashboard/constant"
	"job-dashboard/dto"
	"job-dashboard/entities"
	"job-dashboard/pkg/testdb"
	"job-dashboard/service"
	"testing"
	"time"
)

func TestHandleJobEvent_NotifiesAssigneesExceptActor(t *testing.T) {
	f := newFixture(t, config.Jobs{})
	ctx := context.Background()
	notifications := service.NewNotificationService(f.repo)
	bob := testdb.CreateUser(t, f.db, "bob", constant.RoleStaff)
	carol := testdb.CreateUser(t, f.db, "carol", constant.RoleStaff)
	job := testdb.CreateJob(t, f.db, "JOB2026-0060", 1, f.actor.ID)
	_, err := f.jobs.AssignMembers(ctx, f.actor, job.ID, dto.AssignMemberRequest{UpdateMemberIds: dto.IdList{f.actor.ID, bob.ID, carol.ID}})
	require.NoError(t, err)
	_, err = f.jobs.ChangeStatus(ctx, f.actor, job.ID, dto.ChangeStatusRequest{ToStatusId: 2})
	require.NoError(t, err)

	events := f.publisher.Events()
	require.Len(t, events, 2)
	event := events[1].event
	require.NoError(t, notifications.HandleJobEvent(ctx, event))
	// Redelivery of the same event is a no-op.
	require.NoError(t, notifications.HandleJobEvent(ctx, event))

	var notes []entities.Notification
	require.NoError(t, f.db.Find(&notes).Error)
	require.Len(t, notes, 1)
	assert.Equal(t, event.EventId, notes[0].EventID)
	assert.Equal(t, constant.EventJobStatusChanged, notes[0].Type)
	assert.Contains(t, notes[0].Content, "Delivered")

	bobInbox, err := notifications.List(ctx, bob.ID, false)
	require.NoError(t, err)
	require.Len(t, bobInbox, 1)
	require.NotNil(t, bobInbox[0].Notification)
	assert.Equal(t, "Job JOB2026-0060 changed status", bobInbox[0].Notification.Title)

	actorInbox, err := notifications.List(ctx, f.actor.ID, false)
	require.NoError(t, err)
	assert.Empty(t, actorInbox)

	require.NoError(t, notifications.MarkRead(ctx, bob.ID, bobInbox[0].ID))
	unread, err := notifications.List(ctx, bob.ID, true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	carolInbox, err := notifications.List(ctx, carol.ID, true)
	require.NoError(t, err)
	require.Len(t, carolInbox, 1)
	assert.ErrorIs(t, notifications.MarkRead(ctx, bob.ID, carolInbox[0].ID), service.ErrNotificationNotFound)
}

func TestHandleJobEvent_MissingJobIsNonRetryable(t *testing.T) {
	repo, _ := testdb.NewRepo(t)
	notifications := service.NewNotificationService(repo)

	err := notifications.HandleJobEvent(context.Background(), dto.JobEvent{
		EventId:    uuid.New(),
		Type:       constant.EventJobCreated,
		JobId:      404,
		OccurredAt: time.Now(),
	})
	assert.ErrorIs(t, err, service.ErrNonRetryable)
}

func TestHandleJobEvent_NoRecipients(t *testing.T) {
	f := newFixture(t, config.Jobs{})
	notifications := service.NewNotificationService(f.repo)
	job := testdb.CreateJob(t, f.db, "JOB2026-0061", 1, f.actor.ID)

	err := notifications.HandleJobEvent(context.Background(), dto.JobEvent{
		EventId: uuid.New(),
		Type:    constant.EventJobCreated,
		JobId:   job.ID,
		ActorId: f.actor.ID,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, f.db.Model(&entities.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}
