package service

import "time"

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	// Issue signs a token for subject valid for the configured lifetime.
	Issue(subject string) (token string, expiresAt time.Time, err error)

	// Verify returns the token subject. Any bad signature, malformed token or
	// expiry yields domainerrors.ErrInvalidToken.
	Verify(token string) (subject string, err error)
}
