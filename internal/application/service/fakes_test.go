package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"rudereminder/internal/domain/entity"
	"rudereminder/internal/domain/repository"
	"rudereminder/internal/infrastructure/ai"
	"rudereminder/internal/infrastructure/queue"
	appErrors "rudereminder/internal/pkg/errors"

	"github.com/robfig/cron/v3"
)

// fakeRunner is a JobRunner driven by a simulated clock. Due one-shot jobs
// run synchronously inside Advance.
type fakeRunner struct {
	mu        sync.Mutex
	now       time.Time
	nextID    cron.EntryID
	once      map[cron.EntryID]*fakeJob
	recurring map[cron.EntryID]string
}

type fakeJob struct {
	at  time.Time
	cmd func()
	ran bool
}

func newFakeRunner(now time.Time) *fakeRunner {
	return &fakeRunner{
		now:       now,
		once:      make(map[cron.EntryID]*fakeJob),
		recurring: make(map[cron.EntryID]string),
	}
}

func (r *fakeRunner) Now() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.now
}

func (r *fakeRunner) AddOnce(at time.Time, cmd func()) cron.EntryID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.once[r.nextID] = &fakeJob{at: at, cmd: cmd}
	return r.nextID
}

func (r *fakeRunner) AddJob(spec string, _ func()) (cron.EntryID, error) {
	if !strings.HasPrefix(spec, "@every ") {
		return 0, fmt.Errorf("unsupported spec %q", spec)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.recurring[r.nextID] = spec
	return r.nextID, nil
}

func (r *fakeRunner) RemoveJob(id cron.EntryID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.once, id)
	delete(r.recurring, id)
}

// Advance moves the clock forward and runs every one-shot job now due, in
// time order.
func (r *fakeRunner) GetEntries() []cron.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var entries []cron.Entry
	for id, job := range r.once {
		if !job.ran {
			entries = append(entries, cron.Entry{ID: id, Next: job.at})
		}
	}
	for id := range r.recurring {
		entries = append(entries, cron.Entry{ID: id})
	}
	return entries
}

func (r *fakeRunner) Advance(d time.Duration) {
	r.mu.Lock()
	r.now = r.now.Add(d)
	var due []*fakeJob
	for _, job := range r.once {
		if !job.ran && !job.at.After(r.now) {
			job.ran = true
			due = append(due, job)
		}
	}
	r.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, job := range due {
		job.cmd()
	}
}

// Pending counts one-shot jobs that are registered and have not run.
func (r *fakeRunner) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, job := range r.once {
		if !job.ran {
			n++
		}
	}
	return n
}

func (r *fakeRunner) Recurring() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Collect(maps.Values(r.recurring))
}

type fakeReminderRepo struct {
	mu        sync.Mutex
	reminders map[string]*entity.Reminder
	failFind  bool

	beforeUpdate func() // runs once, ahead of the next Update
}

var _ repository.ReminderRepository = (*fakeReminderRepo)(nil)

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: make(map[string]*entity.Reminder)}
}

func (f *fakeReminderRepo) put(r *entity.Reminder) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reminders[r.ID] = r.Clone()
}

func (f *fakeReminderRepo) get(id string) *entity.Reminder {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.reminders[id]; ok {
		return r.Clone()
	}
	return nil
}

func (f *fakeReminderRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reminders)
}

func (f *fakeReminderRepo) Create(_ context.Context, r *entity.Reminder) error {
	f.put(r)
	return nil
}

func (f *fakeReminderRepo) FindByID(_ context.Context, id string) (*entity.Reminder, error) {
	if r := f.get(id); r != nil {
		return r, nil
	}
	return nil, appErrors.ErrReminderNotFound
}

func (f *fakeReminderRepo) FindByIDForUser(_ context.Context, id, userID string) (*entity.Reminder, error) {
	if r := f.get(id); r != nil && r.UserID == userID {
		return r, nil
	}
	return nil, appErrors.ErrReminderNotFound
}

func (f *fakeReminderRepo) FindByUserID(_ context.Context, userID string) ([]*entity.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFind {
		return nil, errors.New("connection reset")
	}
	var out []*entity.Reminder
	for _, r := range f.reminders {
		if r.UserID == userID {
			out = append(out, r.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledFor.Before(out[j].ScheduledFor) })
	return out, nil
}

func (f *fakeReminderRepo) FindUpcoming(_ context.Context, now time.Time, window time.Duration) ([]*entity.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFind {
		return nil, errors.New("connection reset")
	}
	cutoff := now.Add(window)
	var out []*entity.Reminder
	for _, r := range f.reminders {
		if !r.Completed && r.LastFiredAt == nil && !r.ScheduledFor.After(cutoff) {
			out = append(out, r.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledFor.Before(out[j].ScheduledFor) })
	return out, nil
}

func (f *fakeReminderRepo) Update(_ context.Context, r *entity.Reminder) error {
	if hook := f.beforeUpdate; hook != nil {
		f.beforeUpdate = nil
		hook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reminders[r.ID]; !ok {
		return appErrors.ErrReminderNotFound
	}
	stored := f.reminders[r.ID]
	edit := r.Clone()
	edit.ScheduledFor = stored.ScheduledFor
	edit.Completed = stored.Completed
	edit.CompletedAt = stored.CompletedAt
	edit.LastFiredAt = stored.LastFiredAt
	f.reminders[r.ID] = edit
	return nil
}

func (f *fakeReminderRepo) Reschedule(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.reminders[id]; ok && !r.Completed {
		r.ScheduledFor = at
		r.LastFiredAt = nil
	}
	return nil
}

func (f *fakeReminderRepo) RecordDelivery(_ context.Context, id, rudeMessage string, responses []string, firedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reminders[id]
	if !ok {
		return appErrors.ErrReminderNotFound
	}
	r.RudeMessage = rudeMessage
	r.Responses = append([]string(nil), responses...)
	at := firedAt
	r.LastFiredAt = &at
	return nil
}

func (f *fakeReminderRepo) Complete(_ context.Context, id, userID string, at time.Time) (*entity.Reminder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reminders[id]
	if !ok || r.UserID != userID {
		return nil, appErrors.ErrReminderNotFound
	}
	r.Completed = true
	if r.CompletedAt == nil {
		completedAt := at
		r.CompletedAt = &completedAt
	}
	return r.Clone(), nil
}

func (f *fakeReminderRepo) Delete(_ context.Context, id, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reminders[id]
	if !ok || r.UserID != userID {
		return appErrors.ErrReminderNotFound
	}
	delete(f.reminders, id)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, appErrors.ErrUserNotFound
	}
	c := *u
	c.SetUsage(u.Usage())
	return &c, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *u
	f.users[u.ID] = &c
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return appErrors.ErrUserNotFound
	}
	c := *u
	f.users[u.ID] = &c
	return nil
}

func (f *fakeUserRepo) UpdateUsage(_ context.Context, id string, fn repository.UsageMutator) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, appErrors.ErrUserNotFound
	}
	next := fn(u.Usage())
	u.SetUsage(next)
	return u.Usage(), nil
}

type fakePhraseRepo struct {
	phrases map[int][]entity.RudePhrase
}

func newFakePhraseRepo() *fakePhraseRepo {
	return &fakePhraseRepo{phrases: map[int][]entity.RudePhrase{
		3: {
			{ID: 1, RudenessLevel: 3, Phrase: ", you procrastinating sloth!"},
			{ID: 2, RudenessLevel: 3, Phrase: " - or are you waiting for a written invitation?"},
			{ID: 3, RudenessLevel: 3, Phrase: ". Today, not someday."},
		},
	}}
}

func (f *fakePhraseRepo) FindByLevel(_ context.Context, level int) ([]entity.RudePhrase, error) {
	return f.phrases[level], nil
}

type broadcastEvent struct {
	Type    string
	Payload any
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []broadcastEvent
}

func (f *fakeBroadcaster) Broadcast(eventType string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, broadcastEvent{Type: eventType, Payload: payload})
	return nil
}

func (f *fakeBroadcaster) ofType(eventType string) []broadcastEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []broadcastEvent
	for _, e := range f.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

type sentMail struct {
	To, Subject, HTML, Text string
}

type fakeMailer struct {
	mu      sync.Mutex
	enabled bool
	sent    []sentMail
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, HTML: html, Text: text})
	return nil
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []queue.ReminderFiredEvent
}

func (f *fakePublisher) PublishReminderFired(_ context.Context, event queue.ReminderFiredEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

type fakeAI struct {
	mu        sync.Mutex
	fail      bool
	responses []string
	quote     string
	calls     int
}

func (f *fakeAI) GenerateResponses(_ context.Context, _ ai.PromptContext, _ int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return nil, errors.New("upstream 503")
	}
	return append([]string(nil), f.responses...), nil
}

func (f *fakeAI) GenerateQuote(_ context.Context, _ ai.PromptContext) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("upstream 503")
	}
	return f.quote, nil
}

// fakeDispatcher records fires and marks the reminder delivered.
type fakeDispatcher struct {
	mu    sync.Mutex
	repo  *fakeReminderRepo
	clock *fakeRunner
	fired []string
}

func (f *fakeDispatcher) Fire(ctx context.Context, r *entity.Reminder) error {
	f.mu.Lock()
	f.fired = append(f.fired, r.ID)
	f.mu.Unlock()
	if f.repo != nil {
		return f.repo.RecordDelivery(ctx, r.ID, r.RudeMessage, r.Responses, f.clock.Now())
	}
	return nil
}

func (f *fakeDispatcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fired)
}
