package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"rudereminder/internal/application/generator"
	"rudereminder/internal/domain/classifier"
	"rudereminder/internal/domain/entity"
	"rudereminder/internal/domain/quote"
	"rudereminder/internal/domain/repository"
	"rudereminder/internal/infrastructure/ai"
	"rudereminder/internal/pkg/logger"
)

// aiVariantCount is how many variants premium generation asks for.
const aiVariantCount = 3

// contentBuilder picks between AI and template generation per tier.
type contentBuilder struct {
	reminderRepo repository.ReminderRepository
	ai           AIGenerator
	log          logger.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func newContentBuilder(reminderRepo repository.ReminderRepository, gen AIGenerator, log logger.Logger) *contentBuilder {
	seed := uint64(time.Now().UnixNano())
	return &contentBuilder{
		reminderRepo: reminderRepo,
		ai:           gen,
		log:          log,
		rng:          rand.New(rand.NewPCG(seed, seed>>3)),
	}
}

// variants returns at least one message variant. Premium users get AI
// output; any AI failure falls through to the template generator.
func (b *contentBuilder) variants(ctx context.Context, r *entity.Reminder, user *entity.User, premium bool, mode generator.Mode, now time.Time) []string {
	if premium && b.ai != nil {
		out, err := b.ai.GenerateResponses(ctx, promptContext(r, user, now), aiVariantCount)
		if err != nil {
			b.log.Error(fmt.Sprintf("AI generation failed for reminder %s, using templates", r.ID), err)
		} else if out = nonEmpty(out); len(out) > 0 {
			return out
		}
	}
	return b.templateVariants(ctx, r, user, mode, now)
}

func (b *contentBuilder) templateVariants(ctx context.Context, r *entity.Reminder, user *entity.User, mode generator.Mode, now time.Time) []string {
	return generator.Generate(r, generator.Options{
		Seed:    generator.SeedFor(r.ID, mode, now),
		Now:     now,
		Profile: b.profile(ctx, user.ID),
		Style:   user.PreferredStyle,
	})
}

// profile scores the user's history. A lookup error yields nil, which
// disables intensified candidates.
func (b *contentBuilder) profile(ctx context.Context, userID string) *generator.BehaviorProfile {
	reminders, err := b.reminderRepo.FindByUserID(ctx, userID)
	if err != nil {
		b.log.Warn(fmt.Sprintf("Could not load history for user %s", userID), "error", err.Error())
		return nil
	}
	return generator.BuildProfile(reminders)
}

// quote returns a motivational quote. Only premium users reach the AI.
func (b *contentBuilder) quote(ctx context.Context, r *entity.Reminder, user *entity.User, premium bool, now time.Time) string {
	pc := promptContext(r, user, now)
	if premium && b.ai != nil {
		q, err := b.ai.GenerateQuote(ctx, pc)
		if err == nil && strings.TrimSpace(q) != "" {
			return q
		}
		if err != nil {
			b.log.Error(fmt.Sprintf("AI quote failed for reminder %s", r.ID), err)
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return quote.Local(b.rng, pc.Category, pc.Culture)
}

func promptContext(r *entity.Reminder, user *entity.User, now time.Time) ai.PromptContext {
	pc := ai.PromptContext{
		Task:      r.OriginalMessage,
		Category:  classifier.Categorize(r.OriginalMessage),
		Rudeness:  r.RudenessLevel,
		TimeOfDay: generator.TimeOfDay(now),
	}
	if user.GenderSpecificContent {
		pc.Gender = user.Gender
	}
	if user.CulturalContent {
		pc.Culture = user.Ethnicity
	}
	return pc
}

func nonEmpty(list []string) []string {
	out := list[:0:0]
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
