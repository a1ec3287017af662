// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNameLength is the longest display name the users table holds, in characters.
const MaxNameLength = 100

// User is an account of the todo backend. Tasks hang off it elsewhere; the
// auth subsystem only needs identity and credential fields.
type User struct {
	ID           uuid.UUID // Stable surrogate key.
	Email        string    // Unique, compared exactly as stored.
	Name         string    // Display name.
	PasswordHash *string   // bcrypt digest. Nil for accounts created through federated login.
	AvatarURL    *string   // Optional profile picture, backfilled by federated login.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account can authenticate with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// HasAvatar reports whether an avatar is already set.
func (u *User) HasAvatar() bool {
	return u.AvatarURL != nil && *u.AvatarURL != ""
}

// ClampName cuts name to MaxNameLength characters. Provider supplied names
// are not validated like signup input.
func ClampName(name string) string {
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}

	return string([]rune(name)[:MaxNameLength])
}
