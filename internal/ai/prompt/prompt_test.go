package prompt

import (
	"strings"
	"testing"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
)

func TestBioContainsOnlyCallerFactsOrMarkers(t *testing.T) {
	out := Bio(BioInput{
		Username: "gakpo",
		FullName: "Cody Gakpo",
		Tone:     enums.ToneProfessional,
		Language: enums.LanguageFrench,
	})

	if !strings.Contains(out, "gakpo") {
		t.Fatalf("prompt does not carry the username")
	}
	if !strings.Contains(out, "Cody Gakpo") {
		t.Fatalf("prompt does not carry the full name")
	}
	// Absent optional fields must be rendered as the explicit marker, never
	// dropped.
	if strings.Count(out, Unspecified) < 2 {
		t.Fatalf("expected unspecified markers for art style and interests, got:\n%s", out)
	}
	if !strings.Contains(out, "Language: French") {
		t.Fatalf("prompt does not carry the target language")
	}
}

func TestBioToneInstructionLookup(t *testing.T) {
	tests := []struct {
		tone enums.Tone
		want string
	}{
		{tone: enums.ToneProfessional, want: "third person"},
		{tone: enums.ToneCasual, want: "first person"},
		{tone: enums.ToneCreative, want: "poetic"},
		{tone: enums.Tone("unknown"), want: "third person"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tone), func(t *testing.T) {
			out := Bio(BioInput{Username: "x", Tone: tt.tone, Language: enums.LanguageEnglish})
			if !strings.Contains(out, tt.want) {
				t.Fatalf("tone %q: expected instruction containing %q", tt.tone, tt.want)
			}
		})
	}
}

func TestBioIsDeterministic(t *testing.T) {
	in := BioInput{Username: "a", ArtStyle: "abstract", Tone: enums.ToneCasual, Language: enums.LanguageEnglish}
	if Bio(in) != Bio(in) {
		t.Fatalf("identical inputs produced different prompts")
	}
}

func TestEventDescriptionMarksAbsentFields(t *testing.T) {
	out := EventDescription(EventInput{
		Title:     "Vernissage",
		EventType: "Opening",
		Tone:      enums.ToneCasual,
	})

	if !strings.Contains(out, "Vernissage") || !strings.Contains(out, "Opening") {
		t.Fatalf("prompt does not carry provided fields")
	}
	for _, field := range []string{"Location", "Date and time", "Capacity", "Creator"} {
		line := "- " + field
		idx := strings.Index(out, line)
		if idx < 0 {
			t.Fatalf("field %q missing from prompt", field)
		}
		rest := out[idx:]
		end := strings.Index(rest, "\n")
		if !strings.Contains(rest[:end], Unspecified) {
			t.Fatalf("absent field %q not marked as unspecified: %s", field, rest[:end])
		}
	}
}

func TestTranslationCarriesJSONExample(t *testing.T) {
	out := Translation(TranslationInput{
		Title:   "J'adore l'art moderne",
		Content: "Cette exposition était magnifique.",
		Source:  enums.LanguageFrench,
		Target:  enums.LanguageEnglish,
	})

	if !strings.Contains(out, "from French to English") {
		t.Fatalf("prompt does not name the language pair:\n%s", out)
	}
	if !strings.Contains(out, `"title"`) || !strings.Contains(out, `"content"`) {
		t.Fatalf("prompt does not carry the JSON output example")
	}
	if !strings.Contains(out, "J'adore l'art moderne") {
		t.Fatalf("prompt does not carry the original title")
	}
}

func TestStructuredPromptsCarryOutputSchema(t *testing.T) {
	if out := Sentiment("some text"); !strings.Contains(out, `"label"`) || !strings.Contains(out, `"confidence"`) {
		t.Fatalf("sentiment prompt misses schema fields:\n%s", out)
	}
	out := Moderation("some text")
	for _, field := range []string{`"is_appropriate"`, `"confidence"`, `"reason"`, `"categories"`, `"severity"`} {
		if !strings.Contains(out, field) {
			t.Fatalf("moderation prompt misses %s", field)
		}
	}
}

func TestImagePrompt(t *testing.T) {
	tests := []struct {
		name        string
		description string
		style       string
		want        string
	}{
		{name: "with_style", description: "a cat on a roof", style: "impressionist", want: "a cat on a roof, impressionist style, high quality, detailed"},
		{name: "without_style", description: "a cat on a roof", style: "", want: "a cat on a roof, high quality, detailed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImagePrompt(tt.description, tt.style); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}
