package service

import (
	"context"
	"testing"
	"time"

	"rudereminder/internal/domain/entity"
	"rudereminder/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T) (*schedulerService, *fakeRunner, *fakeReminderRepo, *fakeDispatcher) {
	t.Helper()
	runner := newFakeRunner(testNow)
	repo := newFakeReminderRepo()
	dispatcher := &fakeDispatcher{repo: repo, clock: runner}
	svc := NewSchedulerService(runner, repo, dispatcher, SchedulerOptions{}, logger.NewNop()).(*schedulerService)
	svc.now = runner.Now
	return svc, runner, repo, dispatcher
}

func testReminder(id string, at time.Time) *entity.Reminder {
	return &entity.Reminder{
		ID:                  id,
		UserID:              "user-1",
		Title:               "Go for a run",
		OriginalMessage:     "go for a run",
		RudenessLevel:       3,
		ScheduledFor:        at,
		BrowserNotification: true,
	}
}

func TestScheduleReminderFiresExactlyOnce(t *testing.T) {
	svc, runner, repo, dispatcher := newTestScheduler(t)
	r := testReminder("r-1", testNow.Add(time.Minute))
	repo.put(r)

	require.NoError(t, svc.ScheduleReminder(context.Background(), r))
	assert.True(t, svc.IsScheduled("r-1"))

	runner.Advance(2 * time.Minute)
	assert.Equal(t, 1, dispatcher.count())
	assert.False(t, svc.IsScheduled("r-1"))
	assert.Zero(t, runner.Pending())

	runner.Advance(time.Hour)
	svc.Sweep(context.Background())
	assert.Equal(t, 1, dispatcher.count())
}

func TestCancelReminderScheduleBeforeFire(t *testing.T) {
	svc, runner, repo, dispatcher := newTestScheduler(t)
	r := testReminder("r-1", testNow.Add(time.Minute))
	repo.put(r)

	require.NoError(t, svc.ScheduleReminder(context.Background(), r))
	require.NoError(t, svc.CancelReminderSchedule(context.Background(), "r-1"))
	require.NoError(t, svc.CancelReminderSchedule(context.Background(), "r-1"))

	runner.Advance(2 * time.Minute)
	assert.Zero(t, dispatcher.count())
	assert.False(t, svc.IsScheduled("r-1"))
}

func TestScheduleReminderReplacesExistingTimer(t *testing.T) {
	svc, runner, repo, dispatcher := newTestScheduler(t)
	r := testReminder("r-1", testNow.Add(time.Minute))
	repo.put(r)
	require.NoError(t, svc.ScheduleReminder(context.Background(), r))

	r.ScheduledFor = testNow.Add(10 * time.Minute)
	repo.put(r)
	require.NoError(t, svc.ScheduleReminder(context.Background(), r))
	assert.Equal(t, 1, runner.Pending())

	runner.Advance(2 * time.Minute)
	assert.Zero(t, dispatcher.count())

	runner.Advance(10 * time.Minute)
	assert.Equal(t, 1, dispatcher.count())
}

func TestScheduleReminderIgnoresCompletedAndPast(t *testing.T) {
	svc, runner, _, _ := newTestScheduler(t)

	done := testReminder("done", testNow.Add(time.Hour))
	done.Completed = true
	require.NoError(t, svc.ScheduleReminder(context.Background(), done))

	past := testReminder("past", testNow.Add(-time.Minute))
	require.NoError(t, svc.ScheduleReminder(context.Background(), past))

	assert.Zero(t, runner.Pending())
	assert.False(t, svc.IsScheduled("done"))
	assert.False(t, svc.IsScheduled("past"))
}

func TestTimerSkipsReminderCompletedAfterArming(t *testing.T) {
	svc, runner, repo, dispatcher := newTestScheduler(t)
	r := testReminder("r-1", testNow.Add(time.Minute))
	repo.put(r)
	require.NoError(t, svc.ScheduleReminder(context.Background(), r))

	_, err := repo.Complete(context.Background(), "r-1", "user-1", testNow)
	require.NoError(t, err)

	runner.Advance(2 * time.Minute)
	assert.Zero(t, dispatcher.count())
	assert.False(t, svc.IsScheduled("r-1"))
}

func TestSweepSkipsArmedAndFiresOverdue(t *testing.T) {
	svc, runner, repo, dispatcher := newTestScheduler(t)

	armed := testReminder("armed", testNow.Add(2*time.Minute))
	repo.put(armed)
	require.NoError(t, svc.ScheduleReminder(context.Background(), armed))

	overdue := testReminder("overdue", testNow.Add(-3*time.Minute))
	repo.put(overdue)

	svc.Sweep(context.Background())
	assert.Equal(t, 1, dispatcher.count())
	assert.Equal(t, []string{"overdue"}, dispatcher.fired)
	assert.Equal(t, 1, runner.Pending())
	assert.True(t, svc.IsScheduled("armed"))

	// The overdue reminder now carries LastFiredAt and is not picked up again.
	svc.Sweep(context.Background())
	assert.Equal(t, 1, dispatcher.count())

	runner.Advance(3 * time.Minute)
	assert.Equal(t, []string{"overdue", "armed"}, dispatcher.fired)
}

func TestSweepArmsRemindersInsideWindow(t *testing.T) {
	svc, runner, repo, dispatcher := newTestScheduler(t)
	repo.put(testReminder("soon", testNow.Add(4*time.Minute)))
	repo.put(testReminder("later", testNow.Add(time.Hour)))

	svc.Sweep(context.Background())
	assert.True(t, svc.IsScheduled("soon"))
	assert.False(t, svc.IsScheduled("later"))
	assert.Equal(t, 1, runner.Pending())
	assert.Zero(t, dispatcher.count())
}

func TestInitializeSchedulesStartsSweep(t *testing.T) {
	svc, runner, repo, _ := newTestScheduler(t)
	repo.put(testReminder("soon", testNow.Add(time.Minute)))

	require.NoError(t, svc.InitializeSchedules(context.Background()))
	assert.True(t, svc.IsScheduled("soon"))
	assert.Equal(t, []string{"@every 1m0s"}, runner.Recurring())
	assert.Len(t, runner.GetEntries(), 2)

	svc.Stop()
	assert.False(t, svc.IsScheduled("soon"))
	assert.Empty(t, runner.Recurring())
	assert.Zero(t, runner.Pending())
}

func TestInitializeSchedulesReturnsLoadError(t *testing.T) {
	svc, runner, repo, _ := newTestScheduler(t)
	repo.failFind = true

	err := svc.InitializeSchedules(context.Background())
	require.Error(t, err)
	assert.Empty(t, runner.Recurring())
}
