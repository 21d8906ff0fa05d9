package service

import (
	"context"
	"time"

	"rudereminder/internal/infrastructure/ai"
	"rudereminder/internal/infrastructure/queue"

	"github.com/robfig/cron/v3"
)

// JobRunner arms one-shot and recurring jobs. Implemented by infrastructure/scheduler.
type JobRunner interface {
	AddOnce(at time.Time, cmd func()) cron.EntryID
	AddJob(spec string, cmd func()) (cron.EntryID, error)
	RemoveJob(id cron.EntryID)
	GetEntries() []cron.Entry
}

// Broadcaster sends an event to every connected realtime client.
type Broadcaster interface {
	Broadcast(eventType string, payload any) error
}

// MailSender hands a rendered email to the SMTP transport.
type MailSender interface {
	Enabled() bool
	Send(to, subject, html, text string) error
}

// EventPublisher records fired reminders on the message broker.
type EventPublisher interface {
	PublishReminderFired(ctx context.Context, event queue.ReminderFiredEvent) error
}

// AIGenerator is the remote personalization backend. Only premium paths call it.
type AIGenerator interface {
	GenerateResponses(ctx context.Context, pc ai.PromptContext, count int) ([]string, error)
	GenerateQuote(ctx context.Context, pc ai.PromptContext) (string, error)
}
