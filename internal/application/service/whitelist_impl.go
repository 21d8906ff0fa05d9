package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"rudereminder/internal/domain/repository"
	appErrors "rudereminder/internal/pkg/errors"
	"rudereminder/internal/pkg/logger"
)

type whitelistService struct {
	repo repository.WhitelistRepository
	log  logger.Logger
}

// NewWhitelistService creates a new instance of WhitelistService implementation.
func NewWhitelistService(repo repository.WhitelistRepository, log logger.Logger) WhitelistService {
	return &whitelistService{repo: repo, log: log}
}

func (s *whitelistService) Add(ctx context.Context, email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if err := s.repo.Add(ctx, normalized); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Added %s to the whitelist", normalized))
	return nil
}

func (s *whitelistService) Remove(ctx context.Context, email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, normalized); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Removed %s from the whitelist", normalized))
	return nil
}

func (s *whitelistService) List(ctx context.Context) ([]string, error) {
	emails, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return emails, nil
}

func (s *whitelistService) Contains(ctx context.Context, email string) (bool, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return false, nil
	}
	ok, err := s.repo.Contains(ctx, normalized)
	if err != nil {
		return false, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return ok, nil
}

func (s *whitelistService) Seed(ctx context.Context, emails []string) error {
	added := 0
	for _, email := range emails {
		if strings.TrimSpace(email) == "" {
			continue
		}
		if err := s.Add(ctx, email); err != nil {
			return err
		}
		added++
	}
	if added > 0 {
		s.log.Info(fmt.Sprintf("Seeded whitelist with %d emails", added))
	}
	return nil
}

// normalizeEmail lower-cases and validates an address.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email %q", appErrors.ErrValidation, email)
	}
	return email, nil
}
