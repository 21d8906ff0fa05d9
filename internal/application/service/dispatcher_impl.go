package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/application/generator"
	"rudereminder/internal/domain/classifier"
	"rudereminder/internal/domain/entity"
	"rudereminder/internal/domain/repository"
	"rudereminder/internal/infrastructure/mailer"
	"rudereminder/internal/infrastructure/queue"
	appErrors "rudereminder/internal/pkg/errors"
	"rudereminder/internal/pkg/logger"
)

// Channel names used in logs and history events.
const (
	channelBrowser = "browser"
	channelVoice   = "voice"
	channelEmail   = "email"
)

// DispatcherDeps are the collaborators of the dispatcher. AI and Publisher may be nil.
type DispatcherDeps struct {
	UserRepo     repository.UserRepository
	ReminderRepo repository.ReminderRepository
	Tier         TierService
	AI           AIGenerator
	Broadcaster  Broadcaster
	Mailer       MailSender
	Publisher    EventPublisher
	FollowUps    FollowUpService
}

type dispatcherService struct {
	DispatcherDeps
	content *contentBuilder
	log     logger.Logger
	now     func() time.Time
}

// NewDispatcherService creates a new instance of DispatcherService implementation.
func NewDispatcherService(deps DispatcherDeps, log logger.Logger) DispatcherService {
	return &dispatcherService{
		DispatcherDeps: deps,
		content:        newContentBuilder(deps.ReminderRepo, deps.AI, log),
		log:            log,
		now:            time.Now,
	}
}

// Fire delivers the reminder to its enabled channels.
func (s *dispatcherService) Fire(ctx context.Context, reminder *entity.Reminder) error {
	user, err := s.UserRepo.FindByID(ctx, reminder.UserID)
	if err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			s.log.Debug(fmt.Sprintf("Owner %s of reminder %s no longer exists, skipping delivery", reminder.UserID, reminder.ID))
			return nil
		}
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	now := s.now()
	premium := s.Tier.IsPremium(ctx, user.ID)
	variants := s.content.variants(ctx, reminder, user, premium, generator.ModeRefresh, now)
	category := classifier.Categorize(reminder.OriginalMessage)

	payload := dto.NotificationPayload{
		ReminderID:        reminder.ID,
		UserID:            reminder.UserID,
		Title:             reminder.Title,
		OriginalMessage:   reminder.OriginalMessage,
		CurrentResponse:   variants[0],
		Responses:         variants,
		Remarks:           generator.ContextualRemarks(category, now),
		MotivationalQuote: reminder.MotivationalQuote,
		Category:          category.String(),
		RudenessLevel:     reminder.RudenessLevel,
		Attachments:       reminder.Attachments,
		ScheduledFor:      reminder.ScheduledFor,
		FiredAt:           now,
	}

	if err := s.ReminderRepo.RecordDelivery(ctx, reminder.ID, variants[0], variants, now); err != nil {
		s.log.Error(fmt.Sprintf("Failed to record delivery of reminder %s", reminder.ID), err)
	}

	channels := s.deliverChannels(reminder, user, payload)

	if err := s.Broadcaster.Broadcast(dto.EventReminderFired, payload); err != nil {
		s.log.Error(fmt.Sprintf("Failed to broadcast fired event for reminder %s", reminder.ID), err)
	}

	if s.Publisher != nil {
		event := queue.ReminderFiredEvent{
			ReminderID:    reminder.ID,
			UserID:        reminder.UserID,
			RudenessLevel: reminder.RudenessLevel,
			Message:       variants[0],
			Channels:      channels,
			FiredAt:       now,
		}
		if err := s.Publisher.PublishReminderFired(ctx, event); err != nil {
			s.log.Warn(fmt.Sprintf("Failed to publish history event for reminder %s", reminder.ID), "error", err.Error())
		}
	}

	if s.FollowUps != nil {
		s.FollowUps.ScheduleFollowUps(ctx, reminder)
	}
	s.log.Info(fmt.Sprintf("Fired reminder %s for user %s", reminder.ID, reminder.UserID), "channels", channels)
	return nil
}

// deliverChannels pushes to each channel enabled on both the reminder and the
// user, concurrently, and returns the channels that were attempted.
func (s *dispatcherService) deliverChannels(reminder *entity.Reminder, user *entity.User, payload dto.NotificationPayload) []string {
	var (
		wg       sync.WaitGroup
		channels []string
	)

	if reminder.BrowserNotification && user.BrowserNotifications {
		channels = append(channels, channelBrowser)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Broadcaster.Broadcast(dto.EventNotification, payload); err != nil {
				s.log.Error(fmt.Sprintf("Browser delivery failed for reminder %s", reminder.ID), fmt.Errorf("%w: %v", appErrors.ErrDelivery, err))
			}
		}()
	}

	if reminder.VoiceNotification && user.VoiceNotifications {
		channels = append(channels, channelVoice)
		voice := dto.VoicePayload{
			ReminderID:     reminder.ID,
			UserID:         reminder.UserID,
			Text:           payload.CurrentResponse,
			VoiceCharacter: reminder.VoiceCharacter,
			Settings:       reminder.VoiceCharacter.Settings(),
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Broadcaster.Broadcast(dto.EventVoiceNotification, voice); err != nil {
				s.log.Error(fmt.Sprintf("Voice delivery failed for reminder %s", reminder.ID), fmt.Errorf("%w: %v", appErrors.ErrDelivery, err))
			}
		}()
	}

	if reminder.EmailNotification && user.EmailNotifications && user.Email != "" {
		channels = append(channels, channelEmail)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.sendEmail(user.Email, payload); err != nil {
				s.log.Error(fmt.Sprintf("Email delivery failed for reminder %s", reminder.ID), fmt.Errorf("%w: %v", appErrors.ErrDelivery, err))
			}
		}()
	}

	wg.Wait()
	return channels
}

func (s *dispatcherService) sendEmail(to string, payload dto.NotificationPayload) error {
	if s.Mailer == nil || !s.Mailer.Enabled() {
		return errors.New("smtp transport not configured")
	}
	subject, html, text, err := mailer.RenderReminder(mailer.ReminderEmail{
		Title:        payload.Title,
		Message:      payload.CurrentResponse,
		Quote:        payload.MotivationalQuote,
		Category:     payload.Category,
		ScheduledFor: payload.ScheduledFor,
	})
	if err != nil {
		return err
	}
	return s.Mailer.Send(to, subject, html, text)
}
