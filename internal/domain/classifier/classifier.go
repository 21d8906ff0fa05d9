// Package classifier maps free-text task descriptions onto categories,
// urgency and action verbs. Every function is pure and total.
package classifier

import (
	"regexp"
	"strings"
	"time"

	"rudereminder/internal/domain/constant"
)

type categoryRule struct {
	category constant.Category
	pattern  *regexp.Regexp
}

// Checked in order; the first match wins.
var categoryRules = []categoryRule{
	{constant.CategoryHealth, regexp.MustCompile(`\b(exercis\w*|gym|workout|work out|run|running|jog\w*|walk|yoga|doctor|dentist|medic\w*|pills?|vitamins?|diet|sleep|meditat\w*|stretch\w*|water)\b`)},
	{constant.CategoryWork, regexp.MustCompile(`\b(work|meeting|report|deadline|client|project|presentation|boss|office|email|emails|slides|proposal|standup)\b`)},
	{constant.CategoryPersonal, regexp.MustCompile(`\b(mom|dad|mother|father|family|friends?|birthday|anniversary|date|call|text|visit|wedding|partner)\b`)},
	{constant.CategoryEducation, regexp.MustCompile(`\b(study|studying|homework|exam|test|class|course|lecture|assignment|essay|learn\w*|read|reading|revise|thesis)\b`)},
	{constant.CategoryFinance, regexp.MustCompile(`\b(pay|bills?|bank|tax\w*|budget|rent|invoice|money|savings?|loan|mortgage|insurance)\b`)},
	{constant.CategoryHousehold, regexp.MustCompile(`\b(clean\w*|laundry|dishes|groceries|grocery|cook\w*|trash|garbage|vacuum\w*|tidy|repair|fix|mow|chores?)\b`)},
	{constant.CategoryCreative, regexp.MustCompile(`\b(write|writing|paint\w*|draw\w*|music|guitar|piano|sing\w*|practice|design|blog|novel|photograph\w*|compose)\b`)},
}

// Categorize returns the first category whose keywords appear in taskText,
// or CategoryGeneral.
func Categorize(taskText string) constant.Category {
	text := strings.ToLower(taskText)
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(text) {
			return rule.category
		}
	}
	return constant.CategoryGeneral
}

// UrgencyOf returns high when scheduledFor is within 2 hours of now (or
// already past), medium within 24 hours and low otherwise.
func UrgencyOf(scheduledFor, now time.Time) constant.Urgency {
	until := scheduledFor.Sub(now)
	switch {
	case until <= 2*time.Hour:
		return constant.UrgencyHigh
	case until <= 24*time.Hour:
		return constant.UrgencyMedium
	default:
		return constant.UrgencyLow
	}
}

// ActionVerbs is the recognized vocabulary, in canonical form.
var ActionVerbs = []string{
	"call", "email", "text", "clean", "exercise", "study", "read", "write",
	"pay", "buy", "cook", "finish", "submit", "practice", "meditate", "walk",
}

var actionPattern = regexp.MustCompile(`\b(call|email|text|clean|exercise|study|read|write|pay|buy|cook|finish|submit|practice|meditate|walk)\b`)

// ExtractActionWords returns the distinct recognized verbs in order of first appearance.
func ExtractActionWords(taskText string) []string {
	matches := actionPattern.FindAllString(strings.ToLower(taskText), -1)
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
