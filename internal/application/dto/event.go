package dto

import (
	"time"

	"rudereminder/internal/domain/constant"
)

// Realtime event types.
const (
	EventNotification      = "notification"
	EventVoiceNotification = "voice_notification"
	EventReminderFired     = "reminder_fired"
	EventFollowUp          = "follow_up"
	EventVoiceTest         = "voice_test"
)

// NotificationPayload is broadcast when a reminder fires.
type NotificationPayload struct {
	ReminderID        string    `json:"reminderId"`
	UserID            string    `json:"userId"`
	Title             string    `json:"title"`
	OriginalMessage   string    `json:"originalMessage"`
	CurrentResponse   string    `json:"currentResponse"`
	Responses         []string  `json:"responses"`
	Remarks           []string  `json:"remarks"`
	MotivationalQuote string    `json:"motivationalQuote,omitempty"`
	Category          string    `json:"category"`
	RudenessLevel     int       `json:"rudenessLevel"`
	Attachments       []string  `json:"attachments"`
	ScheduledFor      time.Time `json:"scheduledFor"`
	FiredAt           time.Time `json:"firedAt"`
}

// VoicePayload asks clients to speak Text with the persona's settings.
type VoicePayload struct {
	ReminderID     string                  `json:"reminderId,omitempty"`
	UserID         string                  `json:"userId"`
	Text           string                  `json:"text"`
	VoiceCharacter constant.VoiceCharacter `json:"voiceCharacter"`
	Settings       constant.VoiceSettings  `json:"settings"`
}

// FollowUpPayload is a secondary nag for an incomplete reminder.
type FollowUpPayload struct {
	ReminderID   string                `json:"reminderId"`
	UserID       string                `json:"userId"`
	Message      string                `json:"message"`
	ResponseType constant.ResponseType `json:"responseType"`
	Sequence     int                   `json:"sequence"`
}

// MonthlyLimit is the quota state for the current month. Limit is -1 when unlimited.
type MonthlyLimit struct {
	Exceeded bool `json:"exceeded"`
	Count    int  `json:"count"`
	Limit    int  `json:"limit"`
}
