package enums

import "strings"

// Tone selects the writing style used for generated bios and event
// descriptions.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneCreative     Tone = "creative"
)

func Tones() []Tone {
	return []Tone{ToneProfessional, ToneCasual, ToneCreative}
}

// ParseTone normalizes a tone, falling back to professional for anything
// outside the known set.
func ParseTone(value string) Tone {
	switch Tone(strings.ToLower(strings.TrimSpace(value))) {
	case ToneCasual:
		return ToneCasual
	case ToneCreative:
		return ToneCreative
	default:
		return ToneProfessional
	}
}
