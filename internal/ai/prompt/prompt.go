// Package prompt builds the instruction strings sent to the text model.
// Builders are pure: deterministic for identical inputs, no I/O, no errors.
// Optional fields that the caller left empty are rendered as an explicit
// "not specified" marker so the model is never tempted to invent values.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
)

// Unspecified marks an absent optional field inside a prompt.
const Unspecified = "not specified"

var bioToneInstructions = map[enums.Tone]string{
	enums.ToneProfessional: "Professional and elegant tone, written in the third person",
	enums.ToneCasual:       "Casual and friendly tone, written in the first person",
	enums.ToneCreative:     "Creative and poetic tone, free style",
}

var eventToneInstructions = map[enums.Tone]string{
	enums.ToneProfessional: "Professional and elegant tone, descriptive and informative",
	enums.ToneCasual:       "Casual and friendly tone, engaging and accessible",
	enums.ToneCreative:     "Creative and poetic tone, evocative and inspiring",
}

type BioInput struct {
	Username     string
	FullName     string
	ArtStyle     string
	ArtInterests string
	Tone         enums.Tone
	Language     enums.Language
}

// Bio builds the profile bio generation prompt.
func Bio(in BioInput) string {
	var b strings.Builder
	b.WriteString("You are an expert at writing professional bios for artists on an art platform called Artygen.\n\n")
	b.WriteString("Write an engaging profile bio for this artist.\n\n")
	b.WriteString("ARTIST INFORMATION:\n")
	fmt.Fprintf(&b, "- Artist name/username: %s\n", orUnspecified(in.Username))
	fmt.Fprintf(&b, "- Full name: %s\n", orUnspecified(in.FullName))
	fmt.Fprintf(&b, "- Artistic style: %s\n", orUnspecified(in.ArtStyle))
	fmt.Fprintf(&b, "- Interests and keywords: %s\n", orUnspecified(in.ArtInterests))
	b.WriteString("\nINSTRUCTIONS:\n")
	fmt.Fprintf(&b, "1. Length: 80-120 words maximum\n")
	fmt.Fprintf(&b, "2. Language: %s\n", in.Language.Name())
	fmt.Fprintf(&b, "3. %s\n", toneInstruction(bioToneInstructions, in.Tone))
	b.WriteString("4. Highlight the artist's passion and uniqueness\n")
	b.WriteString("5. Naturally incorporate the style and interests listed above\n")
	b.WriteString("6. End with an inspiring note or an invitation to discover the artist's work\n")
	b.WriteString("7. IMPORTANT: do not invent facts (exhibitions, awards, etc.); ")
	b.WriteString("if a field above says \"" + Unspecified + "\", stay sober and do not guess it\n")
	b.WriteString("8. Remain authentic and credible\n")
	b.WriteString("\nWrite the bio now:")
	return b.String()
}

type EventInput struct {
	Title     string
	EventType string
	Location  string
	Date      string
	Capacity  int
	Creator   string
	Tone      enums.Tone
}

// EventDescription builds the event description generation prompt.
func EventDescription(in EventInput) string {
	capacity := Unspecified
	if in.Capacity > 0 {
		capacity = fmt.Sprintf("%d people", in.Capacity)
	}

	var b strings.Builder
	b.WriteString("You are an expert at writing descriptions for artistic events on an art platform called Artygen.\n\n")
	b.WriteString("Write an engaging description for this event.\n\n")
	b.WriteString("EVENT INFORMATION:\n")
	fmt.Fprintf(&b, "- Title: %s\n", orUnspecified(in.Title))
	fmt.Fprintf(&b, "- Event type: %s\n", orUnspecified(in.EventType))
	fmt.Fprintf(&b, "- Location: %s\n", orUnspecified(in.Location))
	fmt.Fprintf(&b, "- Date and time: %s\n", orUnspecified(in.Date))
	fmt.Fprintf(&b, "- Capacity: %s\n", capacity)
	fmt.Fprintf(&b, "- Creator/organizer: %s\n", orUnspecified(in.Creator))
	b.WriteString("\nINSTRUCTIONS:\n")
	b.WriteString("1. Length: 100-200 words maximum\n")
	b.WriteString("2. Language: English\n")
	fmt.Fprintf(&b, "3. %s\n", toneInstruction(eventToneInstructions, in.Tone))
	b.WriteString("4. Highlight the artistic and creative side of the event\n")
	b.WriteString("5. Naturally incorporate the details listed above\n")
	b.WriteString("6. End with a clear invitation to participate\n")
	b.WriteString("7. IMPORTANT: do not invent details; skip any field marked \"" + Unspecified + "\"\n")
	b.WriteString("\nWrite the description now:")
	return b.String()
}

type TranslationInput struct {
	Title   string
	Content string
	Source  enums.Language
	Target  enums.Language
}

// Translation builds a translation prompt with a strict JSON output example
// to bias the model toward machine-parseable text.
func Translation(in TranslationInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert professional translator. Translate the following title and content from %s to %s.\n",
		in.Source.Name(), in.Target.Name())
	b.WriteString("Keep the artistic and creative tone of the original text. Answer ONLY with JSON in exactly this format, with no extra text:\n\n")
	b.WriteString("{\n    \"title\": \"translated title here\",\n    \"content\": \"translated content here\"\n}\n\n")
	fmt.Fprintf(&b, "Original title: %s\n", in.Title)
	fmt.Fprintf(&b, "Original content: %s\n", in.Content)
	return b.String()
}

// Sentiment builds a sentiment analysis prompt with a strict JSON output
// example.
func Sentiment(text string) string {
	var b strings.Builder
	b.WriteString("Analyze the sentiment of the following artistic text and decide whether it is positive, negative or neutral.\n")
	b.WriteString("Answer ONLY with JSON in exactly this format, with no extra text:\n\n")
	b.WriteString("{\n")
	b.WriteString("    \"score\": [a number between -1.0 (very negative) and 1.0 (very positive)],\n")
	b.WriteString("    \"label\": \"[positive/negative/neutral]\",\n")
	b.WriteString("    \"confidence\": [a number between 0.0 and 1.0],\n")
	b.WriteString("    \"explanation\": \"short explanation of the detected sentiment\"\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "Text to analyze: %s\n", text)
	return b.String()
}

// Moderation builds a content moderation prompt with a strict JSON output
// example.
func Moderation(text string) string {
	var b strings.Builder
	b.WriteString("You are an expert content moderator. Analyze the following text and decide whether it is appropriate for a public art platform.\n")
	b.WriteString("Check for:\n")
	b.WriteString("- Explicit violence or incitement to violence\n")
	b.WriteString("- Hate speech, discrimination, racism, sexism\n")
	b.WriteString("- Harassment or intimidation\n")
	b.WriteString("- Inappropriate sexually explicit content\n")
	b.WriteString("- Spam or scams\n")
	b.WriteString("- Dangerous misinformation\n")
	b.WriteString("- Excessive vulgar language\n\n")
	b.WriteString("Answer ONLY with JSON in exactly this format, with no extra text:\n\n")
	b.WriteString("{\n")
	b.WriteString("    \"is_appropriate\": [true/false],\n")
	b.WriteString("    \"confidence\": [a number between 0.0 and 1.0],\n")
	b.WriteString("    \"reason\": \"explanation if inappropriate, otherwise an empty string\",\n")
	b.WriteString("    \"categories\": [\"list of detected problem categories\"],\n")
	b.WriteString("    \"severity\": \"[low/medium/high/critical]\"\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "Text to moderate: %s\n", text)
	return b.String()
}

// Subcategories asks for exactly five "Name: description" lines for an art
// category, with a worked example of the expected line format.
func Subcategories(categoryName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "List exactly 5 subcategories for the art category '%s'.\n", categoryName)
	b.WriteString("For each subcategory give the name and a short description on the same line.\n")
	b.WriteString("Strict format (one per line):\n")
	b.WriteString("Subcategory name: Short description\n\n")
	b.WriteString("Example:\n")
	b.WriteString("Portraits: Artistic representations of people\n")
	b.WriteString("Landscapes: Natural or urban scenes\n\n")
	fmt.Fprintf(&b, "Now generate the 5 subcategories for '%s'.", categoryName)
	return b.String()
}

// ImagePrompt combines a natural-language description with a style tag for
// the image model.
func ImagePrompt(description, style string) string {
	description = strings.TrimSpace(description)
	style = strings.TrimSpace(style)
	if style == "" {
		return fmt.Sprintf("%s, high quality, detailed", description)
	}
	return fmt.Sprintf("%s, %s style, high quality, detailed", description, style)
}

func orUnspecified(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return Unspecified
	}
	return value
}

func toneInstruction(table map[enums.Tone]string, tone enums.Tone) string {
	if instruction, ok := table[tone]; ok {
		return instruction
	}
	return table[enums.ToneProfessional]
}
