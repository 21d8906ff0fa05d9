// Package generator produces rude, varied message variants for reminders.
// Output is a pure function of the reminder, the options and the seed.
package generator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"rudereminder/internal/domain/classifier"
	"rudereminder/internal/domain/constant"
	"rudereminder/internal/domain/entity"
)

const (
	maxBaseCandidates = 4
	maxVariants       = 5
)

var compiledIndicators = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(contextIndicators))
	for i, ind := range contextIndicators {
		out[i] = regexp.MustCompile(ind.pattern)
	}
	return out
}()

// Options tune a single generation run.
type Options struct {
	Seed    int64
	Now     time.Time // Used for urgency; zero means time.Now
	Profile *BehaviorProfile
	Style   constant.Style
}

// Generate returns between 1 and 5 message variants for r.
func Generate(r *entity.Reminder, opts Options) []string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	task := strings.TrimSpace(r.OriginalMessage)
	category := classifier.Categorize(task)

	var base []string
	base = append(base, contextCandidates(task, r.Context)...)
	base = append(base, actionCandidates(task)...)
	base = append(base, fmt.Sprintf(pick(categoryTemplates[category], opts.Seed), task))
	base = append(base, fmt.Sprintf(pick(consequenceTemplates, opts.Seed), task))

	candidates := dedupe(base)
	if len(candidates) > maxBaseCandidates {
		candidates = candidates[:maxBaseCandidates]
	}

	var extra []string
	if opts.Profile != nil && opts.Profile.EffectivenessFor(r.RudenessLevel) < 50 {
		extra = append(extra, fmt.Sprintf(intensifiedFor(category), task))
	}
	if opts.Style != constant.StyleNone {
		extra = append(extra, styleCandidates(opts.Style, category, task, opts.Seed)...)
	}
	candidates = dedupe(append(candidates, extra...))
	if len(candidates) > maxVariants {
		candidates = candidates[:maxVariants]
	}

	if len(candidates) == 0 {
		return []string{fmt.Sprintf("Time to %s!", task)}
	}

	cues := urgencyCues[classifier.UrgencyOf(r.ScheduledFor, now)]
	start := seedIndex(opts.Seed, len(cues))
	for i, c := range candidates {
		candidates[i] = c + " " + cues[(start+i)%len(cues)]
	}
	return candidates
}

func contextCandidates(task, userContext string) []string {
	userContext = strings.TrimSpace(userContext)
	if userContext == "" {
		return nil
	}
	lower := strings.ToLower(userContext)
	var out []string
	for i, re := range compiledIndicators {
		if re.MatchString(lower) {
			out = append(out, fmt.Sprintf(contextIndicators[i].template, task, userContext))
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, tmpl := range genericContextTemplates {
		out = append(out, fmt.Sprintf(tmpl, task, userContext))
	}
	return out
}

func actionCandidates(task string) []string {
	var out []string
	for _, verb := range classifier.ExtractActionWords(task) {
		if tmpl, ok := actionTemplates[verb]; ok {
			out = append(out, fmt.Sprintf(tmpl, task))
		}
	}
	return out
}

func styleCandidates(style constant.Style, category constant.Category, task string, seed int64) []string {
	byCategory, ok := styleTemplates[style]
	if !ok {
		return nil
	}
	templates, ok := byCategory[category]
	if !ok {
		templates = byCategory[constant.CategoryGeneral]
	}
	out := make([]string, len(templates))
	for i, tmpl := range templates {
		out[i] = fmt.Sprintf(tmpl, task)
	}
	shuffle(out, seed)
	return out
}

func intensifiedFor(category constant.Category) string {
	if tmpl, ok := intensifiedTemplates[category]; ok {
		return tmpl
	}
	return intensifiedTemplates[constant.CategoryGeneral]
}

func pick(list []string, seed int64) string {
	if len(list) == 0 {
		return "%s."
	}
	return list[seedIndex(seed, len(list))]
}

func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := list[:0:0]
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
