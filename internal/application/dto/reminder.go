package dto

import (
	"time"

	"rudereminder/internal/domain/classifier"
	"rudereminder/internal/domain/constant"
	"rudereminder/internal/domain/entity"
)

// CreateReminderRequest is the DTO for creating a reminder. Nil pointers
// fall back to the user's defaults.
type CreateReminderRequest struct {
	Title               string    `json:"title"`
	OriginalMessage     string    `json:"originalMessage"`
	Context             string    `json:"context"`
	RudenessLevel       *int      `json:"rudenessLevel,omitempty"`
	VoiceCharacter      string    `json:"voiceCharacter"`
	MotivationalQuote   string    `json:"motivationalQuote"`
	ScheduledFor        time.Time `json:"scheduledFor"`
	IsMultiDay          bool      `json:"isMultiDay"`
	SelectedDays        []string  `json:"selectedDays"`
	BrowserNotification *bool     `json:"browserNotification,omitempty"`
	VoiceNotification   *bool     `json:"voiceNotification,omitempty"`
	EmailNotification   *bool     `json:"emailNotification,omitempty"`
	Attachments         []string  `json:"attachments"`
}

// UpdateReminderRequest is the DTO for patching a reminder. Only non-nil
// fields are applied.
type UpdateReminderRequest struct {
	Title               *string    `json:"title,omitempty"`
	OriginalMessage     *string    `json:"originalMessage,omitempty"`
	Context             *string    `json:"context,omitempty"`
	RudenessLevel       *int       `json:"rudenessLevel,omitempty"`
	VoiceCharacter      *string    `json:"voiceCharacter,omitempty"`
	MotivationalQuote   *string    `json:"motivationalQuote,omitempty"`
	ScheduledFor        *time.Time `json:"scheduledFor,omitempty"`
	BrowserNotification *bool      `json:"browserNotification,omitempty"`
	VoiceNotification   *bool      `json:"voiceNotification,omitempty"`
	EmailNotification   *bool      `json:"emailNotification,omitempty"`
	Attachments         []string   `json:"attachments,omitempty"`
}

// ReminderResponse is the DTO for sending reminder information to the client.
type ReminderResponse struct {
	ID                  string                  `json:"id"`
	UserID              string                  `json:"userId"`
	Title               string                  `json:"title"`
	OriginalMessage     string                  `json:"originalMessage"`
	Context             string                  `json:"context,omitempty"`
	Category            constant.Category       `json:"category"`
	RudenessLevel       int                     `json:"rudenessLevel"`
	VoiceCharacter      constant.VoiceCharacter `json:"voiceCharacter"`
	MotivationalQuote   string                  `json:"motivationalQuote,omitempty"`
	RudeMessage         string                  `json:"rudeMessage"`
	Responses           []string                `json:"responses"`
	ScheduledFor        time.Time               `json:"scheduledFor"`
	Completed           bool                    `json:"completed"`
	CompletedAt         *time.Time              `json:"completedAt,omitempty"`
	IsMultiDay          bool                    `json:"isMultiDay"`
	SelectedDays        []string                `json:"selectedDays,omitempty"`
	LastFiredAt         *time.Time              `json:"lastFiredAt,omitempty"`
	BrowserNotification bool                    `json:"browserNotification"`
	VoiceNotification   bool                    `json:"voiceNotification"`
	EmailNotification   bool                    `json:"emailNotification"`
	Attachments         []string                `json:"attachments"`
	CreatedAt           time.Time               `json:"createdAt"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
func ToReminderResponse(r *entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:                  r.ID,
		UserID:              r.UserID,
		Title:               r.Title,
		OriginalMessage:     r.OriginalMessage,
		Context:             r.Context,
		Category:            classifier.Categorize(r.OriginalMessage),
		RudenessLevel:       r.RudenessLevel,
		VoiceCharacter:      r.VoiceCharacter,
		MotivationalQuote:   r.MotivationalQuote,
		RudeMessage:         r.RudeMessage,
		Responses:           nonNil(r.Responses),
		ScheduledFor:        r.ScheduledFor,
		Completed:           r.Completed,
		CompletedAt:         r.CompletedAt,
		IsMultiDay:          r.IsMultiDay,
		SelectedDays:        r.SelectedDays,
		LastFiredAt:         r.LastFiredAt,
		BrowserNotification: r.BrowserNotification,
		VoiceNotification:   r.VoiceNotification,
		EmailNotification:   r.EmailNotification,
		Attachments:         nonNil(r.Attachments),
		CreatedAt:           r.CreatedAt,
	}
}

// ToReminderResponseList converts a slice of entity.Reminder to a slice of ReminderResponse DTOs.
func ToReminderResponseList(reminders []*entity.Reminder) []ReminderResponse {
	list := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = ToReminderResponse(r)
	}
	return list
}

// MoreResponsesResponse carries extra variants for "show me more".
type MoreResponsesResponse struct {
	ReminderID string   `json:"reminderId"`
	Responses  []string `json:"responses"`
	Remarks    []string `json:"remarks"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
