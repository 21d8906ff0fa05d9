package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/domain/constant"
	"rudereminder/internal/domain/entity"
	"rudereminder/internal/domain/repository"
	appErrors "rudereminder/internal/pkg/errors"
	"rudereminder/internal/pkg/logger"
)

type userService struct {
	userRepo  repository.UserRepository
	whitelist WhitelistService
	tier      TierService
	log       logger.Logger
}

// NewUserService creates a new instance of UserService implementation.
func NewUserService(userRepo repository.UserRepository, whitelist WhitelistService, tier TierService, log logger.Logger) UserService {
	return &userService{
		userRepo:  userRepo,
		whitelist: whitelist,
		tier:      tier,
		log:       log,
	}
}

// GetOrCreateUser finds a user by ID or creates a new one if not found.
func (s *userService) GetOrCreateUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			s.log.Info(fmt.Sprintf("User %s not found, creating new user.", userID))
			newUser := entity.NewUser(userID, "")
			if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
				s.log.Error("Failed to create user", createErr)
				return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, createErr)
			}
			return newUser, nil
		}
		s.log.Error(fmt.Sprintf("Failed to find user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Debug(fmt.Sprintf("Found existing user %s", userID))
	return user, nil
}

// SyncSession upserts the user from verified token claims. The token email
// wins over the request body.
func (s *userService) SyncSession(ctx context.Context, userID, email string, req dto.SessionRequest) (dto.UserResponse, error) {
	user, err := s.GetOrCreateUser(ctx, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}

	if email == "" {
		email = req.Email
	}
	if email = strings.TrimSpace(email); email != "" {
		user.Email = email
	}
	if name := strings.TrimSpace(req.DisplayName); name != "" {
		user.DisplayName = name
	}

	if user.Email != "" {
		listed, err := s.whitelist.Contains(ctx, user.Email)
		if err != nil {
			s.log.Error(fmt.Sprintf("Failed to check whitelist for user %s, keeping previous flag", userID), err)
		} else {
			user.IsWhitelisted = listed
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to sync session for user %s", userID), err)
		return dto.UserResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Synced session for user %s (whitelisted=%t)", userID, user.IsWhitelisted))
	return s.toResponse(ctx, user), nil
}

// GetProfile returns the user with tier information.
func (s *userService) GetProfile(ctx context.Context, userID string) (dto.UserResponse, error) {
	user, err := s.GetOrCreateUser(ctx, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return s.toResponse(ctx, user), nil
}

// UpdatePreferences patches the user's settings.
func (s *userService) UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (dto.UserResponse, error) {
	user, err := s.GetOrCreateUser(ctx, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}

	if req.DefaultRudenessLevel != nil {
		if !constant.ValidRudeness(*req.DefaultRudenessLevel) {
			return dto.UserResponse{}, fmt.Errorf("%w: defaultRudenessLevel must be between %d and %d", appErrors.ErrValidation, constant.MinRudeness, constant.MaxRudeness)
		}
		user.DefaultRudenessLevel = *req.DefaultRudenessLevel
	}
	if req.DefaultVoiceCharacter != nil {
		voice, ok := constant.ParseVoiceCharacter(*req.DefaultVoiceCharacter)
		if !ok {
			return dto.UserResponse{}, fmt.Errorf("%w: unknown voice %q", appErrors.ErrValidation, *req.DefaultVoiceCharacter)
		}
		user.DefaultVoiceCharacter = voice
	}
	if req.PreferredStyle != nil {
		style, ok := constant.ParseStyle(*req.PreferredStyle)
		if !ok {
			return dto.UserResponse{}, fmt.Errorf("%w: unknown style %q", appErrors.ErrValidation, *req.PreferredStyle)
		}
		user.PreferredStyle = style
	}
	if req.BrowserNotifications != nil {
		user.BrowserNotifications = *req.BrowserNotifications
	}
	if req.VoiceNotifications != nil {
		user.VoiceNotifications = *req.VoiceNotifications
	}
	if req.EmailNotifications != nil {
		user.EmailNotifications = *req.EmailNotifications
	}
	if req.Gender != nil {
		user.Gender = strings.TrimSpace(*req.Gender)
	}
	if req.Ethnicity != nil {
		user.Ethnicity = strings.TrimSpace(*req.Ethnicity)
	}
	if req.GenderSpecificContent != nil {
		user.GenderSpecificContent = *req.GenderSpecificContent
	}
	if req.CulturalContent != nil {
		user.CulturalContent = *req.CulturalContent
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update preferences for user %s", userID), err)
		return dto.UserResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Debug(fmt.Sprintf("Updated preferences for user %s", userID))
	return s.toResponse(ctx, user), nil
}

func (s *userService) toResponse(ctx context.Context, user *entity.User) dto.UserResponse {
	return dto.ToUserResponse(user, s.tier.IsPremium(ctx, user.ID), s.tier.CheckMonthlyLimit(ctx, user.ID))
}
