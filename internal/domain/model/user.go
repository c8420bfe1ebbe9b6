package model

import (
	"time"

	"github.com/Ihebmsaed/Artygen/internal/domain/enums"
)

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	PasswordHash string     `json:"-"`
	Role         enums.Role `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FullName joins first and last name, falling back to the username when
// neither is set.
func (u User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}
