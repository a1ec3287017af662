// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"todo/internal/domain/entity"
	"todo/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store: user records looked up and mutated by email.
type UserRepository interface {
	// FindByEmail returns ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new user. A duplicate email is reported as
	// domainerrors.ErrEmailTaken.
	Create(ctx context.Context, user *entity.User) error

	// CreateIfAbsent inserts user unless a row with the same email exists.
	// It returns the stored row and whether this call created it. A
	// concurrent insert of the same email never surfaces as an error.
	CreateIfAbsent(ctx context.Context, user *entity.User) (*entity.User, bool, error)

	// UpdatePasswordHash replaces the stored digest.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateAvatarIfEmpty sets the avatar only when none is stored and
	// reports whether a row changed.
	UpdateAvatarIfEmpty(ctx context.Context, id uuid.UUID, avatarURL string) (bool, error)
}
