package generator

import (
	"time"

	"rudereminder/internal/domain/constant"
)

// TimeOfDay buckets now into morning, afternoon, evening or night.
func TimeOfDay(now time.Time) string {
	switch h := now.Hour(); {
	case h >= 5 && h < 12:
		return "morning"
	case h >= 12 && h < 17:
		return "afternoon"
	case h >= 17 && h < 22:
		return "evening"
	default:
		return "night"
	}
}

var timeOfDayRemarks = map[string]string{
	"morning":   "Rise and grind. The day is not going to seize itself.",
	"afternoon": "Half the day is gone. What have you got to show for it?",
	"evening":   "The day is almost over. Finish strong or finish sorry.",
	"night":     "Burning the midnight oil? At least make it count.",
}

var categoryRemarks = map[constant.Category]string{
	constant.CategoryHealth:    "Your body keeps the receipts.",
	constant.CategoryWork:      "Work done now is stress avoided later.",
	constant.CategoryPersonal:  "Someone out there is waiting on you.",
	constant.CategoryEducation: "Future exams are built on today's effort.",
	constant.CategoryFinance:   "Money ignored is money lost.",
	constant.CategoryHousehold: "A clean space starts with one chore.",
	constant.CategoryCreative:  "Inspiration shows up for people who show up.",
	constant.CategoryGeneral:   "Small tasks add up to a big life.",
}

// ContextualRemarks returns short flavor lines for the time of day and category.
func ContextualRemarks(category constant.Category, now time.Time) []string {
	remarks := []string{timeOfDayRemarks[TimeOfDay(now)]}
	if line, ok := categoryRemarks[category]; ok {
		remarks = append(remarks, line)
	} else {
		remarks = append(remarks, categoryRemarks[constant.CategoryGeneral])
	}
	return remarks
}
