// Package scheduler wraps robfig/cron with one-shot jobs for reminder timers.
package scheduler

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"rudereminder/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron jobs.
type Scheduler struct {
	cron *cron.Cron
	log  logger.Logger
	mu   sync.Mutex // To protect access to job management
}

// New creates and starts a cron scheduler with seconds precision. Panics in
// jobs are recovered and logged.
func New(log logger.Logger) *Scheduler {
	cl := cronLogger{log: log}
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl)),
	)
	c.Start()
	log.Info("Cron scheduler started")
	return &Scheduler{cron: c, log: log}
}

// AddJob adds a recurring job. spec follows the cron format with seconds
// (e.g. "0 30 * * * *") or a descriptor such as "@every 60s".
func (s *Scheduler) AddJob(spec string, cmd func()) (cron.EntryID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(spec, cmd)
	if err != nil {
		s.log.Error("🔴 ERROR: Failed to add cron job", err, "spec", spec)
		return 0, fmt.Errorf("failed to add cron job: %w", err)
	}
	s.log.Debug("Added cron job", "entryID", id, "spec", spec)
	return id, nil
}

// AddOnce runs cmd a single time at at. A time in the past runs immediately.
// The entry stays registered until RemoveJob is called.
func (s *Scheduler) AddOnce(at time.Time, cmd func()) cron.EntryID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.cron.Schedule(&onceSchedule{at: at}, cron.FuncJob(cmd))
	s.log.Debug("Added one-shot job", "entryID", id, "at", at)
	return id
}

// RemoveJob removes a job from the scheduler by its EntryID.
func (s *Scheduler) RemoveJob(id cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Remove(id)
	s.log.Debug("Removed cron job", "entryID", id)
}

// Stop stops the cron scheduler and waits for running jobs to complete.
// The lock is released before waiting since running jobs may call RemoveJob.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.mu.Unlock()

	if c != nil {
		ctx := c.Stop()
		<-ctx.Done()
		s.log.Info("Cron scheduler stopped")
	}
}

// GetEntries returns the list of scheduled entries. Logged after startup replay.
func (s *Scheduler) GetEntries() []cron.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron.Entries()
}

// onceSchedule yields its activation time on the first call to Next and the
// zero time (never) afterwards.
type onceSchedule struct {
	at   time.Time
	used atomic.Bool
}

func (o *onceSchedule) Next(time.Time) time.Time {
	if o.used.Swap(true) {
		return time.Time{}
	}
	return o.at
}

// cronLogger adapts logger.Logger to cron.Logger.
type cronLogger struct {
	log logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, err, keysAndValues...)
}
