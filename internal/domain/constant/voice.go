package constant

import "strings"

// VoiceCharacter is the persona used for spoken delivery.
type VoiceCharacter string

const (
	VoiceDefault            VoiceCharacter = "default"
	VoiceDrillSergeant      VoiceCharacter = "drill_sergeant"
	VoiceDisappointedParent VoiceCharacter = "disappointed_parent"
	VoiceSarcasticFriend    VoiceCharacter = "sarcastic_friend"
	VoiceMotivationalCoach  VoiceCharacter = "motivational_coach"
	VoiceGrumpyGrandpa      VoiceCharacter = "grumpy_grandpa"
)

// VoiceCharacters lists every persona in catalog order.
var VoiceCharacters = []VoiceCharacter{
	VoiceDefault,
	VoiceDrillSergeant,
	VoiceDisappointedParent,
	VoiceSarcasticFriend,
	VoiceMotivationalCoach,
	VoiceGrumpyGrandpa,
}

// VoiceSettings are the client-side speech synthesis hints for a persona.
type VoiceSettings struct {
	Rate          float64 `json:"rate"`
	Pitch         float64 `json:"pitch"`
	VoiceCategory string  `json:"voiceCategory"`
}

// ParseVoiceCharacter normalizes s and reports whether it names a known persona.
func ParseVoiceCharacter(s string) (VoiceCharacter, bool) {
	v := VoiceCharacter(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range VoiceCharacters {
		if v == known {
			return v, true
		}
	}
	return VoiceDefault, false
}

// Settings returns the speech settings for the persona. Unknown personas get
// the default settings.
func (v VoiceCharacter) Settings() VoiceSettings {
	switch v {
	case VoiceDrillSergeant:
		return VoiceSettings{Rate: 1.2, Pitch: 0.8, VoiceCategory: "male"}
	case VoiceDisappointedParent:
		return VoiceSettings{Rate: 0.9, Pitch: 1.0, VoiceCategory: "female"}
	case VoiceSarcasticFriend:
		return VoiceSettings{Rate: 1.1, Pitch: 1.2, VoiceCategory: "neutral"}
	case VoiceMotivationalCoach:
		return VoiceSettings{Rate: 1.15, Pitch: 1.1, VoiceCategory: "male"}
	case VoiceGrumpyGrandpa:
		return VoiceSettings{Rate: 0.8, Pitch: 0.7, VoiceCategory: "male"}
	default:
		return VoiceSettings{Rate: 1.0, Pitch: 1.0, VoiceCategory: "neutral"}
	}
}

// Description is a short catalog blurb for the persona.
func (v VoiceCharacter) Description() string {
	switch v {
	case VoiceDrillSergeant:
		return "Loud, fast and zero patience for excuses."
	case VoiceDisappointedParent:
		return "Not angry. Just disappointed."
	case VoiceSarcasticFriend:
		return "Roasts you because it cares."
	case VoiceMotivationalCoach:
		return "Pumped up and pushing you over the line."
	case VoiceGrumpyGrandpa:
		return "Back in my day we did our chores."
	default:
		return "A plain, neutral reading voice."
	}
}
