package auth

import (
	"time"

	"todo/config"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"
	"todo/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService loads the signing key once from configuration.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	key, err := cfg.Token.SigningKey()
	if err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return nil, errors.New("jwt signing key must be provided")
	}
	if cfg.Token.Lifetime <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}

	return &jwtService{
		key:    key,
		issuer: cfg.Token.Issuer,
		ttl:    cfg.Token.Lifetime,
		now:    time.Now,
	}, nil
}

// Issue signs a token whose subject is the user email.
func (s *jwtService) Issue(subject string) (string, time.Time, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return token, claims.ExpiresAt.Time, nil
}

// Verify returns the subject of a token checked at or before its expiry.
// Every failure collapses to ErrInvalidToken; the cause is kept in the wrap
// chain for logs.
func (s *jwtService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
		// exp is exclusive in the parser; the inclusive check follows.
		jwt.WithLeeway(time.Second),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.key, nil
	}, opts...)
	if err != nil {
		return "", domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	// A token is valid through its expiry instant.
	if s.now().After(claims.ExpiresAt.Time) {
		return "", domainerrors.ErrInvalidToken.WrapMessage("token is expired")
	}

	if claims.Subject == "" {
		return "", domainerrors.ErrInvalidToken.WrapMessage("token has no subject")
	}

	return claims.Subject, nil
}
