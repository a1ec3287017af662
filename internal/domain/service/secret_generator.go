package service

// SecretGenerator produces the random values handed out during a password reset.
type SecretGenerator interface {
	// OtpCode returns a uniformly random six-digit, zero-padded code.
	OtpCode() (string, error)

	// ResetToken returns an opaque URL-safe ticket and the hash to persist for it.
	ResetToken() (token, tokenHash string, err error)

	// HashResetToken hashes a ticket presented by a client for lookup.
	HashResetToken(token string) string
}
