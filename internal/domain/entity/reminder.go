package entity

import (
	"time"

	"rudereminder/internal/domain/constant"
)

// MaxAttachments is the most media references a reminder may carry.
const MaxAttachments = 5

// Reminder is a scheduled task together with its personalization and delivery state.
type Reminder struct {
	ID              string `gorm:"primaryKey;size:36"`
	UserID          string `gorm:"column:user_id;index;not null"`
	Title           string `gorm:"column:title"`
	OriginalMessage string `gorm:"column:original_message;type:text;not null"`
	Context         string `gorm:"column:context;type:text"` // User's stated reason for the task

	RudenessLevel     int                     `gorm:"column:rudeness_level;not null"`
	VoiceCharacter    constant.VoiceCharacter `gorm:"column:voice_character;size:32"`
	MotivationalQuote string                  `gorm:"column:motivational_quote;type:text"`
	RudeMessage       string                  `gorm:"column:rude_message;type:text"`
	Responses         []string                `gorm:"column:responses;serializer:json"` // Index 0 is the current variant

	ScheduledFor time.Time  `gorm:"column:scheduled_for;index"`
	Completed    bool       `gorm:"column:completed;index"`
	CompletedAt  *time.Time `gorm:"column:completed_at"`
	IsMultiDay   bool       `gorm:"column:is_multi_day"`
	SelectedDays []string   `gorm:"column:selected_days;serializer:json"`
	LastFiredAt  *time.Time `gorm:"column:last_fired_at"` // Set when the dispatcher delivered this reminder

	BrowserNotification bool `gorm:"column:browser_notification"`
	VoiceNotification   bool `gorm:"column:voice_notification"`
	EmailNotification   bool `gorm:"column:email_notification"`

	Attachments []string `gorm:"column:attachments;serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}

// CurrentResponse returns the active variant, falling back to RudeMessage.
func (r *Reminder) CurrentResponse() string {
	if len(r.Responses) > 0 && r.Responses[0] != "" {
		return r.Responses[0]
	}
	return r.RudeMessage
}

// Clone returns a copy that shares no slices with r.
func (r *Reminder) Clone() *Reminder {
	c := *r
	c.Responses = append([]string(nil), r.Responses...)
	c.SelectedDays = append([]string(nil), r.SelectedDays...)
	c.Attachments = append([]string(nil), r.Attachments...)
	return &c
}
