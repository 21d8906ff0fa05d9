package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rudereminder/internal/domain/entity"
	"rudereminder/internal/domain/repository"
	appErrors "rudereminder/internal/pkg/errors"
	"rudereminder/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// fireTimeout bounds a single delivery, including remote generation and SMTP.
const fireTimeout = 2 * time.Minute

// SchedulerOptions tune the catch-up sweep.
type SchedulerOptions struct {
	SweepInterval   time.Duration
	LookaheadWindow time.Duration
}

// armedTimer identifies one arming of a reminder so a stale timer can tell
// it was replaced.
type armedTimer struct {
	entryID cron.EntryID
}

type schedulerService struct {
	runner       JobRunner
	reminderRepo repository.ReminderRepository
	dispatcher   DispatcherService
	opts         SchedulerOptions
	log          logger.Logger
	now          func() time.Time

	mu         sync.Mutex // Protect jobStore, inFlight and sweepEntry
	jobStore   map[string]*armedTimer
	inFlight   map[string]bool
	sweepEntry cron.EntryID
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
func NewSchedulerService(
	runner JobRunner,
	reminderRepo repository.ReminderRepository,
	dispatcher DispatcherService,
	opts SchedulerOptions,
	log logger.Logger,
) SchedulerService {
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = time.Minute
	}
	if opts.LookaheadWindow <= 0 {
		opts.LookaheadWindow = 5 * time.Minute
	}
	return &schedulerService{
		runner:       runner,
		reminderRepo: reminderRepo,
		dispatcher:   dispatcher,
		opts:         opts,
		log:          log,
		now:          time.Now,
		jobStore:     make(map[string]*armedTimer),
		inFlight:     make(map[string]bool),
	}
}

// ScheduleReminder arms a one-shot timer at reminder.ScheduledFor.
func (s *schedulerService) ScheduleReminder(ctx context.Context, reminder *entity.Reminder) error {
	if reminder.Completed {
		return nil
	}
	if !reminder.ScheduledFor.After(s.now()) {
		s.log.Debug(fmt.Sprintf("Reminder %s is already due, leaving it to the sweep", reminder.ID))
		return nil
	}

	reminderID := reminder.ID
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.jobStore[reminderID]; ok {
		s.runner.RemoveJob(existing.entryID)
		delete(s.jobStore, reminderID)
	}
	timer := &armedTimer{}
	timer.entryID = s.runner.AddOnce(reminder.ScheduledFor, func() {
		s.deliver(reminderID, timer)
	})
	s.jobStore[reminderID] = timer
	s.log.Info(fmt.Sprintf("Scheduled notification for reminder %s at %v (Job ID: %d)", reminderID, reminder.ScheduledFor, timer.entryID))
	return nil
}

// CancelReminderSchedule disarms the reminder's timer if one is armed.
func (s *schedulerService) CancelReminderSchedule(ctx context.Context, reminderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.jobStore[reminderID]
	if !ok {
		s.log.Debug(fmt.Sprintf("No active notification schedule found for reminder %s to cancel.", reminderID))
		return nil
	}
	delete(s.jobStore, reminderID)
	s.runner.RemoveJob(timer.entryID)
	s.log.Info(fmt.Sprintf("Cancelled notification schedule for reminder %s (Job ID: %d)", reminderID, timer.entryID))
	return nil
}

// IsScheduled reports whether a timer is armed for the reminder.
func (s *schedulerService) IsScheduled(reminderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobStore[reminderID]
	return ok
}

// InitializeSchedules replays upcoming reminders and starts the periodic sweep.
func (s *schedulerService) InitializeSchedules(ctx context.Context) error {
	s.log.Info("Initializing schedules from database...")
	if err := s.sweep(ctx); err != nil {
		s.log.Error("Failed to retrieve reminders for initialization", err)
		return err
	}

	spec := fmt.Sprintf("@every %s", s.opts.SweepInterval)
	entryID, err := s.runner.AddJob(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.opts.SweepInterval)
		defer cancel()
		s.Sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}

	s.mu.Lock()
	s.sweepEntry = entryID
	armed := len(s.jobStore)
	s.mu.Unlock()
	s.log.Info(fmt.Sprintf("Schedule initialization complete. Armed: %d, sweep every %s", armed, s.opts.SweepInterval))
	s.log.Debug(fmt.Sprintf("Current cron entries: %d", len(s.runner.GetEntries())))
	return nil
}

// Sweep arms upcoming reminders without a timer and fires due ones. A
// reminder with an armed or running timer is never touched.
func (s *schedulerService) Sweep(ctx context.Context) {
	if err := s.sweep(ctx); err != nil {
		s.log.Error("Sweep failed to load upcoming reminders", err)
	}
}

func (s *schedulerService) sweep(ctx context.Context) error {
	now := s.now()
	reminders, err := s.reminderRepo.FindUpcoming(ctx, now, s.opts.LookaheadWindow)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	for _, reminder := range reminders {
		if reminder.Completed || s.isBusy(reminder.ID) {
			continue
		}
		if reminder.ScheduledFor.After(now) {
			if err := s.ScheduleReminder(ctx, reminder); err != nil {
				s.log.Error(fmt.Sprintf("Sweep failed to schedule reminder %s", reminder.ID), err)
			}
			continue
		}
		s.log.Info(fmt.Sprintf("Sweep firing overdue reminder %s (due %v)", reminder.ID, reminder.ScheduledFor))
		s.deliver(reminder.ID, nil)
	}
	return nil
}

// Stop disarms every timer and the sweep.
func (s *schedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.jobStore {
		s.runner.RemoveJob(timer.entryID)
		delete(s.jobStore, id)
	}
	if s.sweepEntry != 0 {
		s.runner.RemoveJob(s.sweepEntry)
		s.sweepEntry = 0
	}
	s.log.Info("Scheduler service stopped, all timers disarmed")
}

func (s *schedulerService) isBusy(reminderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, armed := s.jobStore[reminderID]
	return armed || s.inFlight[reminderID]
}

// deliver runs the dispatcher for one reminder. timer is nil when the sweep
// fires directly. The timer entry is removed after dispatch.
func (s *schedulerService) deliver(reminderID string, timer *armedTimer) {
	s.mu.Lock()
	if timer != nil && s.jobStore[reminderID] != timer {
		// Replaced or cancelled after the runner picked it up.
		s.mu.Unlock()
		return
	}
	if s.inFlight[reminderID] {
		s.mu.Unlock()
		return
	}
	s.inFlight[reminderID] = true
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.log.Error(fmt.Sprintf("Recovered from panic while firing reminder %s", reminderID), fmt.Errorf("%w: %v", appErrors.ErrScheduling, r))
		}
		s.mu.Lock()
		delete(s.inFlight, reminderID)
		if timer != nil && s.jobStore[reminderID] == timer {
			delete(s.jobStore, reminderID)
		}
		s.mu.Unlock()
		if timer != nil {
			s.runner.RemoveJob(timer.entryID)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), fireTimeout)
	defer cancel()

	s.log.Info(fmt.Sprintf("Executing notification job for reminder %s", reminderID))
	reminder, err := s.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, appErrors.ErrReminderNotFound) {
			s.log.Warn(fmt.Sprintf("Reminder %s not found at fire time (already deleted?)", reminderID))
			return
		}
		s.log.Error(fmt.Sprintf("Failed to load reminder %s at fire time", reminderID), err)
		return
	}
	if reminder.Completed || reminder.LastFiredAt != nil {
		s.log.Debug(fmt.Sprintf("Reminder %s already completed or delivered, skipping", reminderID))
		return
	}
	if err := s.dispatcher.Fire(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Error handling notification for reminder %s", reminderID), err)
	}
}
