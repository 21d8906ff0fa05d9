package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/application/generator"
	"rudereminder/internal/domain/entity"
	"rudereminder/internal/domain/repository"
	appErrors "rudereminder/internal/pkg/errors"
	"rudereminder/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

type followUpService struct {
	runner       JobRunner
	reminderRepo repository.ReminderRepository
	broadcaster  Broadcaster
	log          logger.Logger
	now          func() time.Time

	mu      sync.Mutex
	pending map[string]map[cron.EntryID]struct{} // reminderID -> armed nags
}

// NewFollowUpService creates a new instance of FollowUpService implementation.
func NewFollowUpService(runner JobRunner, reminderRepo repository.ReminderRepository, broadcaster Broadcaster, log logger.Logger) FollowUpService {
	return &followUpService{
		runner:       runner,
		reminderRepo: reminderRepo,
		broadcaster:  broadcaster,
		log:          log,
		now:          time.Now,
		pending:      make(map[string]map[cron.EntryID]struct{}),
	}
}

// ScheduleFollowUps arms one timer per rung of the nag ladder.
func (s *followUpService) ScheduleFollowUps(ctx context.Context, reminder *entity.Reminder) {
	s.CancelFollowUps(reminder.ID)

	reminderID, userID := reminder.ID, reminder.UserID
	now := s.now()
	ladder := generator.FollowUps(reminder)

	s.mu.Lock()
	defer s.mu.Unlock()
	armed := make(map[cron.EntryID]struct{}, len(ladder))
	for i, fu := range ladder {
		payload := dto.FollowUpPayload{
			ReminderID:   reminderID,
			UserID:       userID,
			Message:      fu.Message,
			ResponseType: fu.Type,
			Sequence:     i + 1,
		}
		entryID := new(cron.EntryID)
		*entryID = s.runner.AddOnce(now.Add(fu.Delay), func() {
			s.nag(payload, entryID)
		})
		armed[*entryID] = struct{}{}
	}
	s.pending[reminderID] = armed
	s.log.Debug(fmt.Sprintf("Armed %d follow-ups for reminder %s", len(armed), reminderID))
}

// CancelFollowUps disarms every pending nag for the reminder.
func (s *followUpService) CancelFollowUps(reminderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for entryID := range s.pending[reminderID] {
		s.runner.RemoveJob(entryID)
	}
	delete(s.pending, reminderID)
}

// Pending returns how many nags are armed for the reminder.
func (s *followUpService) Pending(reminderID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending[reminderID])
}

// Stop disarms all nags.
func (s *followUpService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for reminderID, entries := range s.pending {
		for entryID := range entries {
			s.runner.RemoveJob(entryID)
		}
		delete(s.pending, reminderID)
	}
}

// nag re-reads the reminder and broadcasts the follow-up unless it was completed.
// entryRef is assigned while s.mu is held, so it is read under the lock.
func (s *followUpService) nag(payload dto.FollowUpPayload, entryRef *cron.EntryID) {
	s.mu.Lock()
	entryID := *entryRef
	entries, ok := s.pending[payload.ReminderID]
	if ok {
		if _, ok = entries[entryID]; ok {
			delete(entries, entryID)
			if len(entries) == 0 {
				delete(s.pending, payload.ReminderID)
			}
		}
	}
	s.mu.Unlock()
	s.runner.RemoveJob(entryID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	reminder, err := s.reminderRepo.FindByID(ctx, payload.ReminderID)
	if err != nil {
		if !errors.Is(err, appErrors.ErrReminderNotFound) {
			s.log.Error(fmt.Sprintf("Failed to load reminder %s for follow-up", payload.ReminderID), err)
		}
		return
	}
	if reminder.Completed {
		return
	}
	if err := s.broadcaster.Broadcast(dto.EventFollowUp, payload); err != nil {
		s.log.Error(fmt.Sprintf("Failed to deliver follow-up %d for reminder %s", payload.Sequence, payload.ReminderID), err)
		return
	}
	s.log.Info(fmt.Sprintf("Sent follow-up %d for reminder %s", payload.Sequence, payload.ReminderID))
}
