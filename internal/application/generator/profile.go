package generator

import (
	"rudereminder/internal/domain/constant"
	"rudereminder/internal/domain/entity"
)

// BehaviorProfile records how often fired reminders at each rudeness level
// were completed, as a 0-100 score.
type BehaviorProfile struct {
	Effectiveness map[int]int
}

// EffectivenessFor returns the score for level, 100 when there is no history.
func (p *BehaviorProfile) EffectivenessFor(level int) int {
	if p == nil {
		return 100
	}
	if score, ok := p.Effectiveness[level]; ok {
		return score
	}
	return 100
}

// BuildProfile scores every rudeness level from the user's reminder history.
// Only reminders that have fired count.
func BuildProfile(reminders []*entity.Reminder) *BehaviorProfile {
	fired := make(map[int]int)
	completed := make(map[int]int)
	for _, r := range reminders {
		if r.LastFiredAt == nil {
			continue
		}
		fired[r.RudenessLevel]++
		if r.Completed {
			completed[r.RudenessLevel]++
		}
	}

	p := &BehaviorProfile{Effectiveness: make(map[int]int, constant.MaxRudeness)}
	for level := constant.MinRudeness; level <= constant.MaxRudeness; level++ {
		if fired[level] == 0 {
			p.Effectiveness[level] = 100
			continue
		}
		p.Effectiveness[level] = completed[level] * 100 / fired[level]
	}
	return p
}
