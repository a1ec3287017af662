package auth

import (
	"testing"
	"time"

	"todo/config"
	domainerrors "todo/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Token = config.TokenConfig{
		Secret:   secret,
		Lifetime: 24 * time.Hour,
		Issuer:   "todo",
	}

	return cfg
}

func newTestJWTService(t *testing.T, secret string, now time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestTokenConfig(secret))
	require.NoError(t, err)

	s := svc.(*jwtService)
	s.now = func() time.Time { return now }

	return s
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing", now)

	token, expiresAt, err := svc.Issue("ann@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(24*time.Hour), expiresAt)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", subject)

	// Still valid one second before expiry.
	svc.now = func() time.Time { return expiresAt.Add(-time.Second) }
	subject, err = svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", subject)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing", now)

	token, expiresAt, err := svc.Issue("ann@x.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{name: "at expiry", at: expiresAt, wantErr: false},
		{name: "just after expiry", at: expiresAt.Add(time.Millisecond), wantErr: true},
		{name: "within the following second", at: expiresAt.Add(500 * time.Millisecond), wantErr: true},
		{name: "one second after expiry", at: expiresAt.Add(time.Second), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.now = func() time.Time { return tt.at }

			subject, err := svc.Verify(token)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ann@x.com", subject)
		})
	}
}

func TestJWTService_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing", now)

	token, _, err := svc.Issue("ann@x.com")
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(25 * time.Hour) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_DifferentKey(t *testing.T) {
	now := time.Now()
	issuer := newTestJWTService(t, "key-one-key-one-key-one-key-one", now)
	verifier := newTestJWTService(t, "key-two-key-two-key-two-key-two", now)

	token, _, err := issuer.Issue("ann@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing", time.Now())

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken, token)
	}
}

func TestJWTService_RejectsForeignAlgorithmsAndClaims(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing", now)

	base := jwt.RegisteredClaims{
		Subject:   "ann@x.com",
		Issuer:    "todo",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	t.Run("alg none", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, base).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("HS512", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, base).SignedString(svc.key)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := base
		claims.Issuer = "someone-else"
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.key)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := base
		claims.ExpiresAt = nil
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.key)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := base
		claims.Subject = ""
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.key)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestTokenConfig(""))
	assert.Error(t, err)
}
