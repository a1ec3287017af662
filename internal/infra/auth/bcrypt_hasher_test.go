package auth

import (
	"strings"
	"testing"

	"todo/config"
	domainerrors "todo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

var defaultPolicy = config.PasswordStrengthConfig{
	MinLength:        8,
	MaxLength:        72,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
}

func newTestHasher() *bcryptHasher {
	return NewBcryptHasherWithPolicy(bcrypt.MinCost, defaultPolicy).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Passw0rd")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Passw0rd", hash)

	assert.True(t, hasher.Check("Passw0rd", hash))
	assert.False(t, hasher.Check("passw0rd", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Passw0rd")
	assert.NoError(t, err)
	second, err := hasher.Hash("Passw0rd")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Passw0rd", first))
	assert.True(t, hasher.Check("Passw0rd", second))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := newTestHasher()

	for _, hash := range []string{"", "invalid_hash", "$2a$", "$2a$10$short"} {
		assert.NotPanics(t, func() {
			assert.False(t, hasher.Check("Passw0rd", hash), "hash %q", hash)
		})
	}
}

func TestBcryptHasher_DistinctPasswords(t *testing.T) {
	hasher := newTestHasher()
	passwords := []string{"Passw0rd", "Passw0rd!", "NewPassw0rd", "Other1234"}

	for i, p1 := range passwords {
		hash, err := hasher.Hash(p1)
		assert.NoError(t, err)
		for j, p2 := range passwords {
			assert.Equal(t, i == j, hasher.Check(p2, hash), "%q vs hash(%q)", p2, p1)
		}
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(6, defaultPolicy)

	hash, err := hasher.Hash("Passw0rd")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithPolicy(99, defaultPolicy).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	for _, password := range []string{"Passw0rd", "NewPassw0rd", "Pässw0rdß", "aB3aB3aB3"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"Pa1", "at least 8 characters"},
		{"PASSWORD123", "lowercase letter"},
		{"password123", "uppercase letter"},
		{"PasswordABC", "one number"},
		{"Aa1" + strings.Repeat("x", 70), "at most 72 bytes"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.ErrorIs(t, err, domainerrors.ErrWeakPassword, tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr)
	}
}

func TestBcryptHasher_RequireSpecial(t *testing.T) {
	policy := defaultPolicy
	policy.RequireSpecial = true
	hasher := NewBcryptHasherWithPolicy(bcrypt.MinCost, policy)

	assert.ErrorIs(t, hasher.ValidatePasswordStrength("Passw0rd"), domainerrors.ErrWeakPassword)
	assert.NoError(t, hasher.ValidatePasswordStrength("Passw0rd!"))
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))

	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))

	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))

	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))
}
