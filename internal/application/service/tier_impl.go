package service

import (
	"context"
	"fmt"
	"time"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/domain/entity"
	"rudereminder/internal/domain/repository"
	appErrors "rudereminder/internal/pkg/errors"
	"rudereminder/internal/pkg/logger"
)

// usageMonthsKept is the current month plus two prior months.
const usageMonthsKept = 3

type tierService struct {
	userRepo repository.UserRepository
	log      logger.Logger
	now      func() time.Time
}

// NewTierService creates a new instance of TierService implementation.
func NewTierService(userRepo repository.UserRepository, log logger.Logger) TierService {
	return &tierService{userRepo: userRepo, log: log, now: time.Now}
}

// IsPremium reports whether the user may use AI generation.
func (s *tierService) IsPremium(ctx context.Context, userID string) bool {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to resolve tier for user %s, treating as free", userID), err)
		return false
	}
	return user.IsPremium(s.now())
}

// CheckMonthlyLimit reports the quota for the current month.
func (s *tierService) CheckMonthlyLimit(ctx context.Context, userID string) dto.MonthlyLimit {
	now := s.now()
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to read monthly usage for user %s, allowing creation", userID), err)
		return dto.MonthlyLimit{Exceeded: false, Count: 0, Limit: FreeMonthlyLimit}
	}

	count := user.UsageFor(entity.MonthKey(now))
	if user.IsPremium(now) {
		return dto.MonthlyLimit{Exceeded: false, Count: count, Limit: -1}
	}
	return dto.MonthlyLimit{Exceeded: count >= FreeMonthlyLimit, Count: count, Limit: FreeMonthlyLimit}
}

// IncrementMonthlyCount records one creation for free users.
func (s *tierService) IncrementMonthlyCount(ctx context.Context, userID string) error {
	now := s.now()
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if user.IsPremium(now) {
		return nil
	}

	key := entity.MonthKey(now)
	oldest := oldestKeptMonth(now)
	_, err = s.userRepo.UpdateUsage(ctx, userID, func(usage map[string]int) map[string]int {
		usage[key]++
		for month := range usage {
			if month < oldest {
				delete(usage, month)
			}
		}
		return usage
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// oldestKeptMonth is the month key two months before now. Keys sort
// chronologically as strings.
func oldestKeptMonth(now time.Time) string {
	utc := now.UTC()
	first := time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
	return entity.MonthKey(first.AddDate(0, -(usageMonthsKept - 1), 0))
}
