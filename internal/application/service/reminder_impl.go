package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/application/generator"
	"rudereminder/internal/domain/classifier"
	"rudereminder/internal/domain/constant"
	"rudereminder/internal/domain/entity"
	"rudereminder/internal/domain/repository"
	appErrors "rudereminder/internal/pkg/errors"
	"rudereminder/internal/pkg/logger"

	"github.com/google/uuid"
)

// Allowed distance between now and a single reminder's schedule.
const (
	minLeadTime = time.Minute
	maxLeadTime = 7 * 24 * time.Hour
)

// ReminderDeps are the collaborators of the reminder service. AI may be nil.
type ReminderDeps struct {
	ReminderRepo repository.ReminderRepository
	UserRepo     repository.UserRepository
	PhraseRepo   repository.RudePhraseRepository
	Tier         TierService
	Scheduler    SchedulerService
	FollowUps    FollowUpService
	AI           AIGenerator
}

type reminderService struct {
	ReminderDeps
	content *contentBuilder
	log     logger.Logger
	now     func() time.Time
	newID   func() string
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(deps ReminderDeps, log logger.Logger) ReminderService {
	return &reminderService{
		ReminderDeps: deps,
		content:      newContentBuilder(deps.ReminderRepo, deps.AI, log),
		log:          log,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// CreateReminder validates, personalizes, persists and schedules reminders.
func (s *reminderService) CreateReminder(ctx context.Context, userID string, req dto.CreateReminderRequest) ([]dto.ReminderResponse, error) {
	now := s.now()
	user, err := s.getOrCreateUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	template, err := s.buildReminder(user, req)
	if err != nil {
		return nil, err
	}
	times, err := s.scheduleTimes(req, now)
	if err != nil {
		return nil, err
	}

	if limit := s.Tier.CheckMonthlyLimit(ctx, userID); limit.Exceeded || exceedsLimit(limit, len(times)) {
		s.log.Info(fmt.Sprintf("User %s hit the monthly limit (%d+%d/%d)", userID, limit.Count, len(times), limit.Limit))
		return nil, appErrors.ErrMonthlyLimitExceeded
	}
	premium := s.Tier.IsPremium(ctx, userID)

	created := make([]*entity.Reminder, 0, len(times))
	for _, at := range times {
		reminder := template.Clone()
		reminder.ID = s.newID()
		reminder.ScheduledFor = at.UTC()

		s.personalize(ctx, reminder, user, premium, now)
		if reminder.MotivationalQuote == "" {
			reminder.MotivationalQuote = s.content.quote(ctx, reminder, user, premium, now)
		}

		if err := s.ReminderRepo.Create(ctx, reminder); err != nil {
			s.log.Error(fmt.Sprintf("Failed to create reminder for user %s", userID), err)
			return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
		if err := s.Scheduler.ScheduleReminder(ctx, reminder); err != nil {
			s.log.Error(fmt.Sprintf("Failed to schedule reminder %s", reminder.ID), err)
		}
		if err := s.Tier.IncrementMonthlyCount(ctx, userID); err != nil {
			s.log.Error(fmt.Sprintf("Failed to increment monthly usage for user %s", userID), err)
		}
		created = append(created, reminder)
		s.log.Info(fmt.Sprintf("Created reminder %s for user %s at %v", reminder.ID, userID, reminder.ScheduledFor))
	}
	return dto.ToReminderResponseList(created), nil
}

// ListReminders returns the user's reminders, soonest first.
func (s *reminderService) ListReminders(ctx context.Context, userID string) ([]dto.ReminderResponse, error) {
	reminders, err := s.ReminderRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list reminders for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToReminderResponseList(reminders), nil
}

// GetReminder retrieves a reminder by its ID.
func (s *reminderService) GetReminder(ctx context.Context, userID, reminderID string) (dto.ReminderResponse, error) {
	reminder, err := s.findOwned(ctx, userID, reminderID)
	if err != nil {
		return dto.ReminderResponse{}, err
	}
	return dto.ToReminderResponse(reminder), nil
}

// UpdateReminder applies a patch and re-arms the scheduler.
func (s *reminderService) UpdateReminder(ctx context.Context, userID, reminderID string, req dto.UpdateReminderRequest) (dto.ReminderResponse, error) {
	now := s.now()
	reminder, err := s.findOwned(ctx, userID, reminderID)
	if err != nil {
		return dto.ReminderResponse{}, err
	}

	contentChanged := false
	if req.OriginalMessage != nil {
		msg := strings.TrimSpace(*req.OriginalMessage)
		if msg == "" {
			return dto.ReminderResponse{}, fmt.Errorf("%w: originalMessage is required", appErrors.ErrValidation)
		}
		contentChanged = msg != reminder.OriginalMessage
		if reminder.Title == reminder.OriginalMessage {
			reminder.Title = msg
		}
		reminder.OriginalMessage = msg
	}
	if req.Title != nil {
		reminder.Title = strings.TrimSpace(*req.Title)
		if reminder.Title == "" {
			reminder.Title = reminder.OriginalMessage
		}
	}
	if req.Context != nil {
		contentChanged = contentChanged || strings.TrimSpace(*req.Context) != reminder.Context
		reminder.Context = strings.TrimSpace(*req.Context)
	}
	if req.RudenessLevel != nil {
		if !constant.ValidRudeness(*req.RudenessLevel) {
			return dto.ReminderResponse{}, fmt.Errorf("%w: rudenessLevel must be between %d and %d", appErrors.ErrValidation, constant.MinRudeness, constant.MaxRudeness)
		}
		contentChanged = contentChanged || *req.RudenessLevel != reminder.RudenessLevel
		reminder.RudenessLevel = *req.RudenessLevel
	}
	if req.VoiceCharacter != nil {
		voice, ok := constant.ParseVoiceCharacter(*req.VoiceCharacter)
		if !ok {
			return dto.ReminderResponse{}, fmt.Errorf("%w: unknown voiceCharacter %q", appErrors.ErrValidation, *req.VoiceCharacter)
		}
		reminder.VoiceCharacter = voice
	}
	if req.MotivationalQuote != nil {
		reminder.MotivationalQuote = strings.TrimSpace(*req.MotivationalQuote)
	}
	rescheduled := false
	if req.ScheduledFor != nil && !req.ScheduledFor.Equal(reminder.ScheduledFor) {
		if err := validateLeadTime(*req.ScheduledFor, now); err != nil {
			return dto.ReminderResponse{}, err
		}
		reminder.ScheduledFor = req.ScheduledFor.UTC()
		rescheduled = true
	}
	if req.BrowserNotification != nil {
		reminder.BrowserNotification = *req.BrowserNotification
	}
	if req.VoiceNotification != nil {
		reminder.VoiceNotification = *req.VoiceNotification
	}
	if req.EmailNotification != nil {
		reminder.EmailNotification = *req.EmailNotification
	}
	if req.Attachments != nil {
		if len(req.Attachments) > entity.MaxAttachments {
			return dto.ReminderResponse{}, fmt.Errorf("%w: at most %d attachments", appErrors.ErrValidation, entity.MaxAttachments)
		}
		reminder.Attachments = req.Attachments
	}

	if contentChanged {
		user, err := s.getOrCreateUser(ctx, userID)
		if err != nil {
			return dto.ReminderResponse{}, err
		}
		s.personalize(ctx, reminder, user, s.Tier.IsPremium(ctx, userID), now)
	}

	if err := s.ReminderRepo.Update(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update reminder %s", reminder.ID), err)
		return dto.ReminderResponse{}, s.mapRepoError(err, reminderID)
	}
	if rescheduled {
		if err := s.ReminderRepo.Reschedule(ctx, reminder.ID, reminder.ScheduledFor); err != nil {
			s.log.Error(fmt.Sprintf("Failed to move reminder %s", reminder.ID), err)
			return dto.ReminderResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
	}

	// Completion or a fire may have landed since the load above.
	current, err := s.findOwned(ctx, userID, reminderID)
	if err != nil {
		return dto.ReminderResponse{}, err
	}
	_ = s.Scheduler.CancelReminderSchedule(ctx, current.ID)
	if !current.Completed {
		if err := s.Scheduler.ScheduleReminder(ctx, current); err != nil {
			s.log.Error(fmt.Sprintf("Failed to re-schedule reminder %s", current.ID), err)
		}
	}
	s.log.Info(fmt.Sprintf("Updated reminder %s for user %s", current.ID, userID))
	return dto.ToReminderResponse(current), nil
}

// DeleteReminder deletes a reminder and disarms its timers.
func (s *reminderService) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	if err := s.ReminderRepo.Delete(ctx, reminderID, userID); err != nil {
		return s.mapRepoError(err, reminderID)
	}
	_ = s.Scheduler.CancelReminderSchedule(ctx, reminderID)
	s.FollowUps.CancelFollowUps(reminderID)
	s.log.Info(fmt.Sprintf("Deleted reminder %s for user %s", reminderID, userID))
	return nil
}

// CompleteReminder marks a reminder completed and disarms its timers.
func (s *reminderService) CompleteReminder(ctx context.Context, userID, reminderID string) (dto.ReminderResponse, error) {
	reminder, err := s.ReminderRepo.Complete(ctx, reminderID, userID, s.now())
	if err != nil {
		return dto.ReminderResponse{}, s.mapRepoError(err, reminderID)
	}
	_ = s.Scheduler.CancelReminderSchedule(ctx, reminderID)
	s.FollowUps.CancelFollowUps(reminderID)
	s.log.Info(fmt.Sprintf("Completed reminder %s for user %s", reminderID, userID))
	return dto.ToReminderResponse(reminder), nil
}

// RegenerateResponse replaces the reminder's message with fresh variants.
func (s *reminderService) RegenerateResponse(ctx context.Context, userID, reminderID string) (dto.ReminderResponse, error) {
	now := s.now()
	reminder, err := s.findOwned(ctx, userID, reminderID)
	if err != nil {
		return dto.ReminderResponse{}, err
	}
	user, err := s.getOrCreateUser(ctx, userID)
	if err != nil {
		return dto.ReminderResponse{}, err
	}

	variants := s.content.variants(ctx, reminder, user, s.Tier.IsPremium(ctx, userID), generator.ModeRefresh, now)
	reminder.RudeMessage = variants[0]
	reminder.Responses = variants
	if err := s.ReminderRepo.Update(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to store regenerated response for reminder %s", reminderID), err)
		return dto.ReminderResponse{}, s.mapRepoError(err, reminderID)
	}
	return dto.ToReminderResponse(reminder), nil
}

// MoreResponses returns extra template variants without persisting them.
func (s *reminderService) MoreResponses(ctx context.Context, userID, reminderID string, refresh bool) (dto.MoreResponsesResponse, error) {
	now := s.now()
	reminder, err := s.findOwned(ctx, userID, reminderID)
	if err != nil {
		return dto.MoreResponsesResponse{}, err
	}
	user, err := s.getOrCreateUser(ctx, userID)
	if err != nil {
		return dto.MoreResponsesResponse{}, err
	}

	mode := generator.ModeStable
	if refresh {
		mode = generator.ModeRefresh
	}
	return dto.MoreResponsesResponse{
		ReminderID: reminder.ID,
		Responses:  s.content.templateVariants(ctx, reminder, user, mode, now),
		Remarks:    generator.ContextualRemarks(classifier.Categorize(reminder.OriginalMessage), now),
	}, nil
}

// buildReminder validates the request and applies the user's defaults.
func (s *reminderService) buildReminder(user *entity.User, req dto.CreateReminderRequest) (*entity.Reminder, error) {
	msg := strings.TrimSpace(req.OriginalMessage)
	if msg == "" {
		return nil, fmt.Errorf("%w: originalMessage is required", appErrors.ErrValidation)
	}

	level := user.DefaultRudenessLevel
	if !constant.ValidRudeness(level) {
		level = constant.DefaultRudeness
	}
	if req.RudenessLevel != nil {
		if !constant.ValidRudeness(*req.RudenessLevel) {
			return nil, fmt.Errorf("%w: rudenessLevel must be between %d and %d", appErrors.ErrValidation, constant.MinRudeness, constant.MaxRudeness)
		}
		level = *req.RudenessLevel
	}

	voice := user.DefaultVoiceCharacter
	if req.VoiceCharacter != "" {
		v, ok := constant.ParseVoiceCharacter(req.VoiceCharacter)
		if !ok {
			return nil, fmt.Errorf("%w: unknown voiceCharacter %q", appErrors.ErrValidation, req.VoiceCharacter)
		}
		voice = v
	}
	if voice == "" {
		voice = constant.VoiceDefault
	}

	if len(req.Attachments) > entity.MaxAttachments {
		return nil, fmt.Errorf("%w: at most %d attachments", appErrors.ErrValidation, entity.MaxAttachments)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = msg
	}

	return &entity.Reminder{
		UserID:              user.ID,
		Title:               title,
		OriginalMessage:     msg,
		Context:             strings.TrimSpace(req.Context),
		RudenessLevel:       level,
		VoiceCharacter:      voice,
		MotivationalQuote:   strings.TrimSpace(req.MotivationalQuote),
		IsMultiDay:          req.IsMultiDay,
		SelectedDays:        req.SelectedDays,
		BrowserNotification: boolOr(req.BrowserNotification, user.BrowserNotifications),
		VoiceNotification:   boolOr(req.VoiceNotification, user.VoiceNotifications),
		EmailNotification:   boolOr(req.EmailNotification, user.EmailNotifications),
		Attachments:         req.Attachments,
	}, nil
}

// scheduleTimes returns one due time for a single reminder, or one per
// selected weekday for multi-day reminders.
func (s *reminderService) scheduleTimes(req dto.CreateReminderRequest, now time.Time) ([]time.Time, error) {
	if req.ScheduledFor.IsZero() {
		return nil, fmt.Errorf("%w: scheduledFor is required", appErrors.ErrInvalidDateTime)
	}
	if req.IsMultiDay {
		return nextWeekdayOccurrences(req.SelectedDays, req.ScheduledFor, now.Add(minLeadTime))
	}
	if err := validateLeadTime(req.ScheduledFor, now); err != nil {
		return nil, err
	}
	return []time.Time{req.ScheduledFor}, nil
}

func validateLeadTime(at, now time.Time) error {
	if at.Before(now.Add(minLeadTime)) {
		return fmt.Errorf("%w: must be at least 1 minute in the future", appErrors.ErrInvalidDateTime)
	}
	if at.After(now.Add(maxLeadTime)) {
		return fmt.Errorf("%w: must be within 7 days", appErrors.ErrInvalidDateTime)
	}
	return nil
}

// personalize sets RudeMessage and Responses. Free users get the task with a
// seed-chosen phrase appended; premium users get AI output.
func (s *reminderService) personalize(ctx context.Context, reminder *entity.Reminder, user *entity.User, premium bool, now time.Time) {
	variants := s.content.variants(ctx, reminder, user, premium, generator.ModeStable, now)
	if premium {
		reminder.RudeMessage = variants[0]
		reminder.Responses = variants
		return
	}

	reminder.RudeMessage = s.phraseMessage(ctx, reminder)
	if reminder.RudeMessage == "" {
		reminder.RudeMessage = variants[0]
	}
	responses := []string{reminder.RudeMessage}
	for _, v := range variants {
		if v != reminder.RudeMessage {
			responses = append(responses, v)
		}
	}
	reminder.Responses = responses
}

func (s *reminderService) phraseMessage(ctx context.Context, reminder *entity.Reminder) string {
	phrases, err := s.PhraseRepo.FindByLevel(ctx, reminder.RudenessLevel)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load rude phrases for level %d", reminder.RudenessLevel), err)
		return ""
	}
	if len(phrases) == 0 {
		return ""
	}
	idx := generator.StableSeed(reminder.ID) % int64(len(phrases))
	return phrases[idx].Render(reminder.OriginalMessage)
}

func (s *reminderService) getOrCreateUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, appErrors.ErrUserNotFound) {
		s.log.Error(fmt.Sprintf("Failed to find user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("User %s not found, creating new user.", userID))
	user = entity.NewUser(userID, "")
	if err := s.UserRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return user, nil
}

func (s *reminderService) findOwned(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	reminder, err := s.ReminderRepo.FindByIDForUser(ctx, reminderID, userID)
	if err != nil {
		return nil, s.mapRepoError(err, reminderID)
	}
	return reminder, nil
}

func (s *reminderService) mapRepoError(err error, reminderID string) error {
	if errors.Is(err, appErrors.ErrReminderNotFound) {
		return appErrors.ErrReminderNotFound
	}
	s.log.Error(fmt.Sprintf("Database error for reminder %s", reminderID), err)
	return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
}

// exceedsLimit reports whether adding n reminders would pass a capped quota.
func exceedsLimit(limit dto.MonthlyLimit, n int) bool {
	return limit.Limit >= 0 && limit.Count+n > limit.Limit
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}
