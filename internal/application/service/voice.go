package service

import (
	"context"

	"rudereminder/internal/application/dto"
)

// VoiceService exposes the voice personas.
type VoiceService interface {
	// Catalog lists every persona with its speech settings.
	Catalog() []dto.VoiceResponse
	// Test builds a speech sample for a persona and broadcasts it.
	Test(ctx context.Context, userID string, req dto.VoiceTestRequest) (dto.VoicePayload, error)
}
