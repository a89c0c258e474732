package model

import (
	"strings"
	"time"
)

// User is the domain entity, mapped 1:1 to the users table.
type User struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"` // Never expose in JSON
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	MiddleName   *string `json:"middle_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins first, middle and last name, skipping the middle
// name when it is not set.
func (u User) FullName() string {
	parts := []string{u.FirstName}
	if u.MiddleName != nil && *u.MiddleName != "" {
		parts = append(parts, *u.MiddleName)
	}
	parts = append(parts, u.LastName)
	return strings.Join(parts, " ")
}
