package service

import (
	"context"

	"rudereminder/internal/domain/entity"
)

// FollowUpService arms best-effort nags after a reminder fires. Nags live
// in memory only.
type FollowUpService interface {
	// ScheduleFollowUps arms the nag ladder for the reminder, replacing any pending one.
	ScheduleFollowUps(ctx context.Context, reminder *entity.Reminder)
	// CancelFollowUps disarms every pending nag for the reminder. Idempotent.
	CancelFollowUps(reminderID string)
	// Pending returns how many nags are armed for the reminder.
	Pending(reminderID string) int
	// Stop disarms all nags.
	Stop()
}
