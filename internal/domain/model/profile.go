package model

import "time"

// Profile carries the artist-facing part of an account. One to one with User.
type Profile struct {
	UserID       int64      `json:"user_id"`
	Bio          string     `json:"bio"`
	ArtStyle     string     `json:"art_style"`
	ArtInterests string     `json:"art_interests"`
	BioGenerated bool       `json:"bio_generated"`
	PhotoKey     string     `json:"photo_key"`
	Birthdate    *time.Time `json:"birthdate"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
