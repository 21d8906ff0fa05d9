package service

import (
	"context"
	"testing"
	"time"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFollowUps(t *testing.T) (*followUpService, *fakeRunner, *fakeReminderRepo, *fakeBroadcaster) {
	t.Helper()
	runner := newFakeRunner(testNow)
	repo := newFakeReminderRepo()
	hub := &fakeBroadcaster{}
	svc := NewFollowUpService(runner, repo, hub, logger.NewNop()).(*followUpService)
	svc.now = runner.Now
	return svc, runner, repo, hub
}

func TestFollowUpsFireInOrder(t *testing.T) {
	svc, runner, repo, hub := newTestFollowUps(t)
	r := testReminder("r-1", testNow)
	repo.put(r)

	svc.ScheduleFollowUps(context.Background(), r)
	assert.Equal(t, 3, svc.Pending("r-1"))

	runner.Advance(15 * time.Minute)
	events := hub.ofType(dto.EventFollowUp)
	require.Len(t, events, 1)
	first := events[0].Payload.(dto.FollowUpPayload)
	assert.Equal(t, 1, first.Sequence)
	assert.Contains(t, first.Message, "go for a run")
	assert.Equal(t, 2, svc.Pending("r-1"))

	runner.Advance(2 * time.Hour)
	events = hub.ofType(dto.EventFollowUp)
	require.Len(t, events, 3)
	assert.Equal(t, 3, events[2].Payload.(dto.FollowUpPayload).Sequence)
	assert.Zero(t, svc.Pending("r-1"))
}

func TestFollowUpsSkipCompletedReminder(t *testing.T) {
	svc, runner, repo, hub := newTestFollowUps(t)
	r := testReminder("r-1", testNow)
	repo.put(r)
	svc.ScheduleFollowUps(context.Background(), r)

	runner.Advance(15 * time.Minute)
	require.Len(t, hub.ofType(dto.EventFollowUp), 1)

	_, err := repo.Complete(context.Background(), "r-1", "user-1", runner.Now())
	require.NoError(t, err)

	runner.Advance(3 * time.Hour)
	assert.Len(t, hub.ofType(dto.EventFollowUp), 1)
}

func TestCancelFollowUps(t *testing.T) {
	svc, runner, repo, hub := newTestFollowUps(t)
	r := testReminder("r-1", testNow)
	repo.put(r)
	svc.ScheduleFollowUps(context.Background(), r)

	svc.CancelFollowUps("r-1")
	svc.CancelFollowUps("r-1")
	assert.Zero(t, svc.Pending("r-1"))
	assert.Zero(t, runner.Pending())

	runner.Advance(3 * time.Hour)
	assert.Empty(t, hub.ofType(dto.EventFollowUp))
}

func TestScheduleFollowUpsReplacesPending(t *testing.T) {
	svc, runner, repo, _ := newTestFollowUps(t)
	r := testReminder("r-1", testNow)
	repo.put(r)

	svc.ScheduleFollowUps(context.Background(), r)
	svc.ScheduleFollowUps(context.Background(), r)
	assert.Equal(t, 3, svc.Pending("r-1"))
	assert.Equal(t, 3, runner.Pending())

	svc.Stop()
	assert.Zero(t, runner.Pending())
}
