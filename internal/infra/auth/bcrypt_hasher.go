// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"todo/config"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from auth.bcryptCost and passwordStrength.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	return NewBcryptHasherWithPolicy(cfg.Auth.BcryptCost, cfg.PasswordStrength)
}

// NewBcryptHasherWithPolicy is NewBcryptHasher without a full config.
func NewBcryptHasherWithPolicy(cost int, policy config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrInternalError.WithDetails("password hashing failed: " + err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash in constant time.
func (h *bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured policy and reports the first
// rule that fails.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy

	if p.MinLength > 0 && utf8.RuneCountInString(password) < p.MinLength {
		return weak(fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if p.MaxLength > 0 && len(password) > p.MaxLength {
		return weak(fmt.Sprintf("password must be at most %d bytes long", p.MaxLength))
	}
	if p.RequireLowercase && !h.hasLowercase(password) {
		return weak("password must contain at least one lowercase letter")
	}
	if p.RequireUppercase && !h.hasUppercase(password) {
		return weak("password must contain at least one uppercase letter")
	}
	if p.RequireNumbers && !h.hasNumbers(password) {
		return weak("password must contain at least one number")
	}
	if p.RequireSpecial && !h.hasSpecialChars(password) {
		return weak("password must contain at least one special character")
	}

	return nil
}

func weak(details string) error {
	return domainerrors.ErrWeakPassword.WithDetails(details)
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}
