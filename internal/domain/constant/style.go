package constant

import "strings"

// Style is the preferred tone for an extra generated candidate set.
type Style string

const (
	StyleNone        Style = ""
	StyleToughLove   Style = "tough-love"
	StyleEncouraging Style = "encouraging"
	StyleHumorous    Style = "humorous"
	StyleDirect      Style = "direct"
)

// ParseStyle normalizes s. Unknown values yield StyleNone and false.
func ParseStyle(s string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleToughLove, "tough_love", "toughlove":
		return StyleToughLove, true
	case StyleEncouraging:
		return StyleEncouraging, true
	case StyleHumorous:
		return StyleHumorous, true
	case StyleDirect:
		return StyleDirect, true
	case StyleNone:
		return StyleNone, true
	}
	return StyleNone, false
}

// ResponseType labels a follow-up template's tone.
type ResponseType string

const (
	ResponseEncouraging  ResponseType = "encouraging"
	ResponseMotivational ResponseType = "motivational"
	ResponseStern        ResponseType = "stern"
	ResponseSarcastic    ResponseType = "sarcastic"
	ResponseHumorous     ResponseType = "humorous"
)

// Rudeness bounds.
const (
	MinRudeness     = 1
	MaxRudeness     = 5
	DefaultRudeness = 3
)

// ValidRudeness reports whether level is within [MinRudeness, MaxRudeness].
func ValidRudeness(level int) bool {
	return level >= MinRudeness && level <= MaxRudeness
}
