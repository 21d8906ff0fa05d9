// Package quote holds the static motivational quote pools used when no
// remote generator is available.
package quote

import (
	"math/rand/v2"
	"strings"

	"rudereminder/internal/domain/constant"
)

var cultural = map[string][]string{
	"african": {
		"If you want to go fast, go alone. If you want to go far, go together.",
		"However long the night, the dawn will break.",
	},
	"asian": {
		"A journey of a thousand miles begins with a single step.",
		"Fall seven times, stand up eight.",
	},
	"hispanic": {
		"Poco a poco se va lejos.",
		"El que no arriesga no gana.",
	},
	"european": {
		"Well begun is half done.",
		"Rome was not built in a day, but they were laying bricks every hour.",
	},
	"middle_eastern": {
		"Trust in God, but tie your camel.",
		"Patience is the key to relief.",
	},
}

var byCategory = map[constant.Category][]string{
	constant.CategoryHealth: {
		"Take care of your body. It's the only place you have to live.",
		"The only bad workout is the one that didn't happen.",
	},
	constant.CategoryWork: {
		"Done is better than perfect.",
		"Amateurs sit and wait for inspiration. The rest of us just get up and go to work.",
	},
	constant.CategoryPersonal: {
		"The people who matter deserve your time, not your excuses.",
		"Small acts of care add up to a life.",
	},
	constant.CategoryEducation: {
		"The expert in anything was once a beginner.",
		"Learning never exhausts the mind.",
	},
	constant.CategoryFinance: {
		"Beware of little expenses. A small leak will sink a great ship.",
		"Do not save what is left after spending; spend what is left after saving.",
	},
	constant.CategoryHousehold: {
		"A tidy space is a tidy mind.",
		"Five minutes now saves an hour later.",
	},
	constant.CategoryCreative: {
		"You can't use up creativity. The more you use, the more you have.",
		"Inspiration exists, but it has to find you working.",
	},
}

var generic = []string{
	"The secret of getting ahead is getting started.",
	"It always seems impossible until it's done.",
	"Don't watch the clock; do what it does. Keep going.",
	"Action is the foundational key to all success.",
	"You don't have to be great to start, but you have to start to be great.",
}

// Local picks a quote uniformly at random from the most specific pool that
// exists: cultural background, then category, then generic.
func Local(rng *rand.Rand, category constant.Category, culture string) string {
	if pool, ok := cultural[normalizeCulture(culture)]; ok && len(pool) > 0 {
		return pool[rng.IntN(len(pool))]
	}
	if pool, ok := byCategory[category]; ok && len(pool) > 0 {
		return pool[rng.IntN(len(pool))]
	}
	return generic[rng.IntN(len(generic))]
}

func normalizeCulture(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
