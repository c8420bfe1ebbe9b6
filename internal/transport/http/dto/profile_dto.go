package dto

import "time"

type ProfileResponse struct {
	UserID       int64      `json:"user_id"`
	Bio          string     `json:"bio"`
	ArtStyle     string     `json:"art_style"`
	ArtInterests string     `json:"art_interests"`
	BioGenerated bool       `json:"bio_generated"`
	PhotoKey     string     `json:"photo_key,omitempty"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
}

type ProfileUpdateRequest struct {
	Bio          string     `json:"bio"`
	ArtStyle     string     `json:"art_style"`
	ArtInterests string     `json:"art_interests"`
	PhotoKey     string     `json:"photo_key,omitempty"`
	Birthdate    *time.Time `json:"birthdate,omitempty"`
}

type GenerateBioRequest struct {
	Tone     string `json:"tone"`
	Language string `json:"language,omitempty"`
}

type GenerateBioResponse struct {
	Bio string `json:"bio"`
}

// RegenerateBioRequest names the tone the stored bio already has; the
// drafts come back in the remaining tones.
type RegenerateBioRequest struct {
	CurrentTone string `json:"current_tone"`
	Language    string `json:"language,omitempty"`
}

type BioDraftResponse struct {
	Tone string `json:"tone"`
	Bio  string `json:"bio"`
}

type RegenerateBioResponse struct {
	Drafts []BioDraftResponse `json:"drafts"`
}
