package service

import (
	"context"

	"rudereminder/internal/domain/entity"
)

// SchedulerService owns the pending delivery timer of every reminder.
type SchedulerService interface {
	// ScheduleReminder arms a timer for the reminder, replacing any existing
	// one. Reminders that are already due are left to the sweep.
	ScheduleReminder(ctx context.Context, reminder *entity.Reminder) error
	// CancelReminderSchedule disarms the reminder's timer. Idempotent.
	CancelReminderSchedule(ctx context.Context, reminderID string) error
	// IsScheduled reports whether a timer is armed for the reminder.
	IsScheduled(reminderID string) bool
	// InitializeSchedules replays upcoming reminders from the DB and starts the periodic sweep.
	InitializeSchedules(ctx context.Context) error
	// Sweep arms upcoming reminders and fires due reminders that have no timer.
	Sweep(ctx context.Context)
	// Stop disarms every timer and the sweep.
	Stop()
}
