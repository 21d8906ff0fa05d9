package service

import (
	"context"
	"fmt"
	"strings"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/domain/constant"
	appErrors "rudereminder/internal/pkg/errors"
	"rudereminder/internal/pkg/logger"
)

const defaultVoiceSample = "This is your reminder. Do the thing you said you would do."

type voiceService struct {
	broadcaster Broadcaster
	log         logger.Logger
}

// NewVoiceService creates a new instance of VoiceService implementation.
func NewVoiceService(broadcaster Broadcaster, log logger.Logger) VoiceService {
	return &voiceService{broadcaster: broadcaster, log: log}
}

func (s *voiceService) Catalog() []dto.VoiceResponse {
	out := make([]dto.VoiceResponse, 0, len(constant.VoiceCharacters))
	for _, v := range constant.VoiceCharacters {
		out = append(out, dto.VoiceResponse{
			ID:          v,
			Description: v.Description(),
			Settings:    v.Settings(),
		})
	}
	return out
}

// Test returns the payload even when the broadcast fails.
func (s *voiceService) Test(ctx context.Context, userID string, req dto.VoiceTestRequest) (dto.VoicePayload, error) {
	voice, ok := constant.ParseVoiceCharacter(req.VoiceCharacter)
	if !ok {
		return dto.VoicePayload{}, fmt.Errorf("%w: unknown voice %q", appErrors.ErrValidation, req.VoiceCharacter)
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		text = defaultVoiceSample
	}

	payload := dto.VoicePayload{
		UserID:         userID,
		Text:           text,
		VoiceCharacter: voice,
		Settings:       voice.Settings(),
	}
	if err := s.broadcaster.Broadcast(dto.EventVoiceTest, payload); err != nil {
		s.log.Warn(fmt.Sprintf("Failed to broadcast voice test for user %s", userID), "error", err.Error())
	}
	return payload, nil
}
