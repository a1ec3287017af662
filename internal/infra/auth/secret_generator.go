package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"

	"todo/internal/domain/service"
	"todo/internal/errors"
)

const (
	otpSpace         = 1_000_000
	resetTokenLength = 32
)

type randomSecretGenerator struct{}

// NewSecretGenerator returns a generator backed by crypto/rand.
func NewSecretGenerator() service.SecretGenerator {
	return randomSecretGenerator{}
}

// OtpCode draws uniformly from 000000-999999.
func (randomSecretGenerator) OtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpace))
	if err != nil {
		return "", errors.Wrap(err, "generate otp")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (g randomSecretGenerator) ResetToken() (string, string, error) {
	buf := make([]byte, resetTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "generate reset token")
	}

	token := base64.RawURLEncoding.EncodeToString(buf)

	return token, g.HashResetToken(token), nil
}

func (randomSecretGenerator) HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
