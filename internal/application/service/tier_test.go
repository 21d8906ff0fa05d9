package service

import (
	"context"
	"testing"
	"time"

	"rudereminder/internal/domain/constant"
	"rudereminder/internal/domain/entity"
	"rudereminder/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTier(users ...*entity.User) (*tierService, *fakeUserRepo) {
	repo := newFakeUserRepo(users...)
	svc := NewTierService(repo, logger.NewNop()).(*tierService)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func TestTierIsPremium(t *testing.T) {
	ended := testNow.Add(-time.Hour)
	future := testNow.Add(24 * time.Hour)

	free := entity.NewUser("free", "")
	whitelisted := entity.NewUser("vip", "vip@example.com")
	whitelisted.IsWhitelisted = true
	active := entity.NewUser("active", "")
	active.SubscriptionStatus = constant.SubscriptionActive
	active.SubscriptionEndsAt = &future
	lapsed := entity.NewUser("lapsed", "")
	lapsed.SubscriptionPlan = constant.PlanPremium
	lapsed.SubscriptionEndsAt = &ended

	svc, _ := newTestTier(free, whitelisted, active, lapsed)
	ctx := context.Background()

	assert.False(t, svc.IsPremium(ctx, "free"))
	assert.True(t, svc.IsPremium(ctx, "vip"))
	assert.True(t, svc.IsPremium(ctx, "active"))
	assert.False(t, svc.IsPremium(ctx, "lapsed"))
	assert.False(t, svc.IsPremium(ctx, "missing"))
}

func TestTierCheckMonthlyLimit(t *testing.T) {
	eleven := entity.NewUser("eleven", "")
	eleven.SetUsage(map[string]int{"2026-10": 11})
	twelve := entity.NewUser("twelve", "")
	twelve.SetUsage(map[string]int{"2026-10": 12, "2026-09": 40})
	vip := entity.NewUser("vip", "")
	vip.IsWhitelisted = true
	vip.SetUsage(map[string]int{"2026-10": 50})

	svc, _ := newTestTier(eleven, twelve, vip)
	ctx := context.Background()

	assert.Equal(t, 12, FreeMonthlyLimit)
	limit := svc.CheckMonthlyLimit(ctx, "eleven")
	assert.False(t, limit.Exceeded)
	assert.Equal(t, 11, limit.Count)
	assert.Equal(t, FreeMonthlyLimit, limit.Limit)

	limit = svc.CheckMonthlyLimit(ctx, "twelve")
	assert.True(t, limit.Exceeded)
	assert.Equal(t, 12, limit.Count)

	limit = svc.CheckMonthlyLimit(ctx, "vip")
	assert.False(t, limit.Exceeded)
	assert.Equal(t, -1, limit.Limit)

	limit = svc.CheckMonthlyLimit(ctx, "missing")
	assert.False(t, limit.Exceeded)
	assert.Zero(t, limit.Count)
}

func TestTierIncrementPrunesOldMonths(t *testing.T) {
	u := entity.NewUser("u", "")
	u.SetUsage(map[string]int{"2026-06": 3, "2026-08": 2, "2026-10": 1})
	svc, repo := newTestTier(u)

	require.NoError(t, svc.IncrementMonthlyCount(context.Background(), "u"))

	stored, err := repo.FindByID(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-08": 2, "2026-10": 2}, stored.Usage())
}

func TestTierIncrementSkipsPremium(t *testing.T) {
	u := entity.NewUser("vip", "")
	u.IsWhitelisted = true
	svc, repo := newTestTier(u)

	require.NoError(t, svc.IncrementMonthlyCount(context.Background(), "vip"))

	stored, err := repo.FindByID(context.Background(), "vip")
	require.NoError(t, err)
	assert.Empty(t, stored.Usage())
}

func TestTierIncrementCapsAfterTwelve(t *testing.T) {
	u := entity.NewUser("u", "")
	svc, _ := newTestTier(u)
	ctx := context.Background()

	for range FreeMonthlyLimit {
		require.False(t, svc.CheckMonthlyLimit(ctx, "u").Exceeded)
		require.NoError(t, svc.IncrementMonthlyCount(ctx, "u"))
	}
	assert.True(t, svc.CheckMonthlyLimit(ctx, "u").Exceeded)
}

func TestOldestKeptMonth(t *testing.T) {
	assert.Equal(t, "2026-08", oldestKeptMonth(testNow))
	assert.Equal(t, "2025-11", oldestKeptMonth(time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC)))
}
