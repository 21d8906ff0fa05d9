package service

import (
	"context"

	"rudereminder/internal/domain/entity"
)

// DispatcherService delivers a due reminder to every enabled channel.
type DispatcherService interface {
	// Fire regenerates the reminder's message and fans it out. A missing
	// owner aborts silently. Channel failures are logged, never returned.
	Fire(ctx context.Context, reminder *entity.Reminder) error
}
