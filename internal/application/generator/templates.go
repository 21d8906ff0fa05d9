package generator

import "rudereminder/internal/domain/constant"

type contextIndicator struct {
	name     string
	pattern  string
	template string // %[1]s task, %[2]s user context
}

var contextIndicators = []contextIndicator{
	{"important", `\b(important|crucial|critical|essential|must|have to|need to)\b`,
		`You literally said "%[2]s". Important things don't do themselves, so %[1]s.`},
	{"health", `\b(health|healthy|doctor|weight|fit|fitness|energy|body|pain|sleep)\b`,
		`"%[2]s" was your reason. Your body is keeping score, so %[1]s.`},
	{"family", `\b(family|kids?|children|mom|dad|mother|father|parents?|wife|husband|partner|sister|brother)\b`,
		`You did this for them: "%[2]s". They are counting on you, so %[1]s.`},
	{"work", `\b(job|boss|career|promotion|work|client|team|deadline|review)\b`,
		`"%[2]s". Your career won't wait for your mood, so %[1]s.`},
	{"financial", `\b(money|pay|debt|save|saving|savings|bills?|afford|budget|rent|loan)\b`,
		`You wrote "%[2]s". Your wallet remembers even if you don't, so %[1]s.`},
	{"social", `\b(friends?|party|people|social|lonely|date|relationship|community)\b`,
		`"%[2]s" is what you said. People notice who shows up, so %[1]s.`},
	{"personal-goal", `\b(goal|dream|better|improve|grow|habit|myself|become|promise)\b`,
		`You promised yourself: "%[2]s". Future you is watching, so %[1]s.`},
}

var genericContextTemplates = []string{
	`You said "%[2]s". Prove you meant it: %[1]s.`,
	`Remember why you set this: "%[2]s". Now %[1]s.`,
}

var actionTemplates = map[string]string{
	"call":     "That phone works both ways. Make the call: %s.",
	"email":    "Your drafts folder is not a personality. Send it: %s.",
	"text":     "It takes thirty seconds to type. %s.",
	"clean":    "The mess is not going to develop feelings and leave. %s.",
	"exercise": "Your muscles filed a missing persons report. %s.",
	"study":    "The exam does not care about your vibes. %s.",
	"read":     "Those pages won't read themselves. %s.",
	"write":    "A blank page is just procrastination with margins. %s.",
	"pay":      "Late fees are a tax on ignoring reminders. %s.",
	"buy":      "The store closes eventually. %s.",
	"cook":     "Takeout again? Really? %s.",
	"finish":   "Almost done is the same as not done. %s.",
	"submit":   "Nobody grades what you never hand in. %s.",
	"practice": "Talent without practice is just potential. %s.",
	"meditate": "Five minutes of calm, or another day of chaos. %s.",
	"walk":     "Your legs were built for this. %s.",
}

var categoryTemplates = map[constant.Category][]string{
	constant.CategoryHealth: {
		"Your health called. It wants you to %s.",
		"Couch time is over. Time to %s.",
	},
	constant.CategoryWork: {
		"Your inbox is judging you. %s.",
		"Professionals ship. Go %s.",
	},
	constant.CategoryPersonal: {
		"The people in your life deserve better. %s.",
		"Relationships run on effort. %s.",
	},
	constant.CategoryEducation: {
		"Your brain is not going to upgrade itself. %s.",
		"Knowledge is power, and you are running low. %s.",
	},
	constant.CategoryFinance: {
		"Money does not manage itself. %s.",
		"Your bank account has questions. %s.",
	},
	constant.CategoryHousehold: {
		"Your home is starting to look like a crime scene. %s.",
		"The chores have been waiting patiently. Unlike me. %s.",
	},
	constant.CategoryCreative: {
		"Art does not make itself. %s.",
		"Your muse clocked in. Did you? %s.",
	},
	constant.CategoryGeneral: {
		"No more excuses. %s.",
		"You set this reminder for a reason. %s.",
	},
}

var consequenceTemplates = []string{
	"Skip it and tomorrow-you inherits the mess: %s.",
	"Every minute you wait makes this harder. %s.",
	"Ignore this and it will be back, louder. %s.",
	"The cost of not doing it is higher than doing it. %s.",
}

var intensifiedTemplates = map[constant.Category]string{
	constant.CategoryHealth:    "Gentle reminders clearly don't work on you. Get up and %s. Now.",
	constant.CategoryWork:      "You have ignored this before. Not this time. %s, immediately.",
	constant.CategoryPersonal:  "Enough stalling. The people waiting on you are out of patience. %s.",
	constant.CategoryEducation: "Your track record says you'll skip this. Prove it wrong and %s.",
	constant.CategoryFinance:   "Your history of ignoring money tasks is expensive. %s today.",
	constant.CategoryHousehold: "Nice reminders failed. Here's a mean one: %s.",
	constant.CategoryCreative:  "Talking about it is not doing it. Stop hiding and %s.",
	constant.CategoryGeneral:   "Polite didn't work. So: %s. No more snoozing.",
}

var styleTemplates = map[constant.Style]map[constant.Category][]string{
	constant.StyleToughLove: {
		constant.CategoryHealth:  {"Nobody is coming to save you. %s.", "Your excuses don't burn calories. %s.", "Pain now or regret later. %s."},
		constant.CategoryWork:    {"Your competition is already working. %s.", "Wishing is not a strategy. %s.", "Deadlines don't negotiate. %s."},
		constant.CategoryGeneral: {"Stop waiting for motivation. %s.", "You know what to do. %s.", "Discipline beats mood. %s."},
	},
	constant.StyleEncouraging: {
		constant.CategoryHealth:  {"You've got this. One step at a time: %s.", "Your body will thank you. %s.", "Small wins count. %s."},
		constant.CategoryWork:    {"You're more capable than you think. %s.", "Future you will be proud. %s.", "Progress over perfection. %s."},
		constant.CategoryGeneral: {"You can do this. %s.", "Start small, finish strong. %s.", "I believe in you. %s."},
	},
	constant.StyleHumorous: {
		constant.CategoryHealth:  {"Even your couch needs a break from you. %s.", "Your fitness tracker thinks you died. %s.", "The fridge is not a workout. %s."},
		constant.CategoryWork:    {"Your to-do list started a support group. %s.", "Even your coffee is tired of waiting. %s.", "Procrastination is not a job title. %s."},
		constant.CategoryGeneral: {"Plot twist: you actually do it. %s.", "Your snooze button filed for overtime. %s.", "Breaking news: local hero finally does task. %s."},
	},
	constant.StyleDirect: {
		constant.CategoryHealth:  {"%s. Now.", "Time's up. %s.", "Do it: %s."},
		constant.CategoryWork:    {"%s. Today.", "No delays. %s.", "Priority one: %s."},
		constant.CategoryGeneral: {"%s. Go.", "Now: %s.", "Task: %s. Do it."},
	},
}

var urgencyCues = map[constant.Urgency][]string{
	constant.UrgencyHigh:   {"(Right now.)", "(The clock is ticking.)", "(No time left.)", "(Move!)"},
	constant.UrgencyMedium: {"(Today, not someday.)", "(Before the day runs out.)", "(Sooner is better.)"},
	constant.UrgencyLow:    {"(Plan for it now.)", "(Don't let it slide.)", "(Future you says thanks.)"},
}
