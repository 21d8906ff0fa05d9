package service

import (
	"context"

	"rudereminder/internal/application/dto"
)

// FreeMonthlyLimit is how many reminders a free user may create per UTC month.
const FreeMonthlyLimit = 12

// TierService resolves AI entitlement and the free-tier creation quota.
type TierService interface {
	// IsPremium reports whether the user may use AI generation. Lookup errors yield false.
	IsPremium(ctx context.Context, userID string) bool
	// CheckMonthlyLimit reports the quota for the current month. Lookup errors yield "not exceeded".
	CheckMonthlyLimit(ctx context.Context, userID string) dto.MonthlyLimit
	// IncrementMonthlyCount records one creation for free users and prunes old months.
	IncrementMonthlyCount(ctx context.Context, userID string) error
}
