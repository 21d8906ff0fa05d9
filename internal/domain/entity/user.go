package entity

import (
	"maps"
	"time"

	"rudereminder/internal/domain/constant"

	"gorm.io/datatypes"
)

// User is the slice of the user profile the reminder core consumes.
// Identity comes from the external auth provider.
type User struct {
	ID          string `gorm:"column:id;primaryKey;size:64"`
	Email       string `gorm:"column:email;index"`
	DisplayName string `gorm:"column:display_name"`

	// Global channel preferences
	BrowserNotifications bool `gorm:"column:browser_notifications"`
	VoiceNotifications   bool `gorm:"column:voice_notifications"`
	EmailNotifications   bool `gorm:"column:email_notifications"`

	DefaultRudenessLevel  int                     `gorm:"column:default_rudeness_level"`
	DefaultVoiceCharacter constant.VoiceCharacter `gorm:"column:default_voice_character;size:32"`
	PreferredStyle        constant.Style          `gorm:"column:preferred_style;size:32"`

	// Personalization attributes, only used when the matching opt-in is set
	Gender                string `gorm:"column:gender"`
	Ethnicity             string `gorm:"column:ethnicity"`
	GenderSpecificContent bool   `gorm:"column:gender_specific_content"`
	CulturalContent       bool   `gorm:"column:cultural_content"`

	SubscriptionStatus constant.SubscriptionStatus `gorm:"column:subscription_status;size:32"`
	SubscriptionPlan   constant.SubscriptionPlan   `gorm:"column:subscription_plan;size:32"`
	SubscriptionEndsAt *time.Time                  `gorm:"column:subscription_ends_at"`
	IsWhitelisted      bool                        `gorm:"column:is_whitelisted"` // Assigned at session sync

	MonthlyReminderUsage datatypes.JSONType[map[string]int] `gorm:"column:monthly_reminder_usage"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// NewUser returns a user with the default preferences applied.
func NewUser(id, email string) *User {
	return &User{
		ID:                    id,
		Email:                 email,
		BrowserNotifications:  true,
		VoiceNotifications:    false,
		EmailNotifications:    false,
		DefaultRudenessLevel:  constant.DefaultRudeness,
		DefaultVoiceCharacter: constant.VoiceDefault,
		SubscriptionPlan:      constant.PlanFree,
	}
}

// IsPremium reports AI entitlement at now: an active or premium subscription
// that has not ended, or a whitelisted account.
func (u *User) IsPremium(now time.Time) bool {
	if u.IsWhitelisted {
		return true
	}
	subscribed := u.SubscriptionStatus == constant.SubscriptionActive || u.SubscriptionPlan == constant.PlanPremium
	if !subscribed {
		return false
	}
	return u.SubscriptionEndsAt == nil || u.SubscriptionEndsAt.After(now)
}

// Usage returns a copy of the monthly usage map.
func (u *User) Usage() map[string]int {
	out := make(map[string]int)
	maps.Copy(out, u.MonthlyReminderUsage.Data())
	return out
}

// UsageFor returns the creation count recorded for monthKey.
func (u *User) UsageFor(monthKey string) int {
	return u.MonthlyReminderUsage.Data()[monthKey]
}

// SetUsage replaces the monthly usage map.
func (u *User) SetUsage(m map[string]int) {
	u.MonthlyReminderUsage = datatypes.NewJSONType(m)
}

// MonthKey formats t as the UTC calendar month used for quota accounting.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
