package generator

import (
	"fmt"
	"time"

	"rudereminder/internal/domain/constant"
	"rudereminder/internal/domain/entity"
)

// FollowUpDelays are the offsets after the original fire at which nags go out.
var FollowUpDelays = []time.Duration{
	15 * time.Minute,
	30 * time.Minute,
	60 * time.Minute,
	120 * time.Minute,
}

// FollowUp is one secondary nag.
type FollowUp struct {
	Delay   time.Duration
	Message string
	Type    constant.ResponseType
}

type followUpTemplate struct {
	text string // %s is the task
	kind constant.ResponseType
}

var followUpTemplates = map[int][]followUpTemplate{
	1: {
		{"Just checking in: how's \"%s\" going?", constant.ResponseEncouraging},
		{"Still time to %s. You can do it.", constant.ResponseMotivational},
		{"A gentle nudge: %s.", constant.ResponseEncouraging},
	},
	2: {
		{"Hey, \"%s\" is still on your list.", constant.ResponseEncouraging},
		{"You'll feel great once you %s.", constant.ResponseMotivational},
		{"Friendly reminder, round two: %s.", constant.ResponseHumorous},
	},
	3: {
		{"\"%s\" is still not done. Just saying.", constant.ResponseStern},
		{"Oh look, \"%s\" is still waiting. Shocking.", constant.ResponseSarcastic},
		{"Future you is begging: %s.", constant.ResponseMotivational},
	},
	4: {
		{"Seriously? \"%s\" is STILL not done?", constant.ResponseStern},
		{"Wow, a world record in ignoring \"%s\".", constant.ResponseSarcastic},
		{"Your couch must be very comfortable. %s.", constant.ResponseHumorous},
	},
	5: {
		{"Unbelievable. \"%s\". Now. No more excuses.", constant.ResponseStern},
		{"Congratulations on avoiding \"%s\" like it's your full-time job.", constant.ResponseSarcastic},
		{"I'll keep yelling until you %s.", constant.ResponseStern},
	},
}

// FollowUps returns the nag ladder for r, one entry per template paired with
// the delay ladder in order.
func FollowUps(r *entity.Reminder) []FollowUp {
	level := r.RudenessLevel
	if !constant.ValidRudeness(level) {
		level = constant.DefaultRudeness
	}
	templates := followUpTemplates[level]
	n := min(len(templates), len(FollowUpDelays))

	out := make([]FollowUp, 0, n)
	for i := range n {
		out = append(out, FollowUp{
			Delay:   FollowUpDelays[i],
			Message: fmt.Sprintf(templates[i].text, r.OriginalMessage),
			Type:    templates[i].kind,
		})
	}
	return out
}
