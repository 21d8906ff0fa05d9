package dto

import (
	"time"

	"rudereminder/internal/domain/constant"
	"rudereminder/internal/domain/entity"
)

// SessionRequest carries profile attributes from the auth provider. The
// user id comes from the verified token.
type SessionRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// UpdatePreferencesRequest patches the user's settings. Only non-nil fields are applied.
type UpdatePreferencesRequest struct {
	BrowserNotifications  *bool   `json:"browserNotifications,omitempty"`
	VoiceNotifications    *bool   `json:"voiceNotifications,omitempty"`
	EmailNotifications    *bool   `json:"emailNotifications,omitempty"`
	DefaultRudenessLevel  *int    `json:"defaultRudenessLevel,omitempty"`
	DefaultVoiceCharacter *string `json:"defaultVoiceCharacter,omitempty"`
	PreferredStyle        *string `json:"preferredStyle,omitempty"`
	Gender                *string `json:"gender,omitempty"`
	Ethnicity             *string `json:"ethnicity,omitempty"`
	GenderSpecificContent *bool   `json:"genderSpecificContent,omitempty"`
	CulturalContent       *bool   `json:"culturalContent,omitempty"`
}

// UserResponse is the profile returned to the client.
type UserResponse struct {
	ID                    string                      `json:"id"`
	Email                 string                      `json:"email"`
	DisplayName           string                      `json:"displayName"`
	BrowserNotifications  bool                        `json:"browserNotifications"`
	VoiceNotifications    bool                        `json:"voiceNotifications"`
	EmailNotifications    bool                        `json:"emailNotifications"`
	DefaultRudenessLevel  int                         `json:"defaultRudenessLevel"`
	DefaultVoiceCharacter constant.VoiceCharacter     `json:"defaultVoiceCharacter"`
	PreferredStyle        constant.Style              `json:"preferredStyle"`
	Gender                string                      `json:"gender,omitempty"`
	Ethnicity             string                      `json:"ethnicity,omitempty"`
	GenderSpecificContent bool                        `json:"genderSpecificContent"`
	CulturalContent       bool                        `json:"culturalContent"`
	SubscriptionStatus    constant.SubscriptionStatus `json:"subscriptionStatus"`
	SubscriptionPlan      constant.SubscriptionPlan   `json:"subscriptionPlan"`
	SubscriptionEndsAt    *time.Time                  `json:"subscriptionEndsAt,omitempty"`
	IsPremium             bool                        `json:"isPremium"`
	MonthlyLimit          MonthlyLimit                `json:"monthlyLimit"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(u *entity.User, premium bool, limit MonthlyLimit) UserResponse {
	return UserResponse{
		ID:                    u.ID,
		Email:                 u.Email,
		DisplayName:           u.DisplayName,
		BrowserNotifications:  u.BrowserNotifications,
		VoiceNotifications:    u.VoiceNotifications,
		EmailNotifications:    u.EmailNotifications,
		DefaultRudenessLevel:  u.DefaultRudenessLevel,
		DefaultVoiceCharacter: u.DefaultVoiceCharacter,
		PreferredStyle:        u.PreferredStyle,
		Gender:                u.Gender,
		Ethnicity:             u.Ethnicity,
		GenderSpecificContent: u.GenderSpecificContent,
		CulturalContent:       u.CulturalContent,
		SubscriptionStatus:    u.SubscriptionStatus,
		SubscriptionPlan:      u.SubscriptionPlan,
		SubscriptionEndsAt:    u.SubscriptionEndsAt,
		IsPremium:             premium,
		MonthlyLimit:          limit,
	}
}

// VoiceResponse describes one persona in the catalog.
type VoiceResponse struct {
	ID          constant.VoiceCharacter `json:"id"`
	Description string                  `json:"description"`
	Settings    constant.VoiceSettings  `json:"settings"`
}

// VoiceTestRequest asks for a sample of a persona.
type VoiceTestRequest struct {
	VoiceCharacter string `json:"voiceCharacter"`
	Text           string `json:"text"`
}
