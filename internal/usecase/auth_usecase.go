// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SignupInput defines the data required to create a password account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// FederatedLoginInput carries either an authorization code (with the redirect
// URI it was issued for) or a provider-issued ID token.
type FederatedLoginInput struct {
	Code        string
	RedirectURI string
	IDToken     string
}

type RequestPasswordResetInput struct {
	Email string
}

type VerifyOtpInput struct {
	Email   string
	OtpCode string
}

// ChangePasswordInput completes a reset. ResetToken is the ticket returned by
// VerifyOtp.
type ChangePasswordInput struct {
	Email      string
	Password   string
	Confirm    string
	ResetToken string
}

// --- Output DTOs ---

// AuthOutput is returned by every successful login.
type AuthOutput struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Token     string
	Avatar    string
	ExpiresAt time.Time
}

// SignupOutput describes the created account. Signup does not log in.
type SignupOutput struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// VerifyOtpOutput hands out the single-use ticket that authorizes ChangePassword.
type VerifyOtpOutput struct {
	ResetToken string
	ExpiresAt  time.Time
}

// AuthUsecase is the sole entry point of the authentication subsystem.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)
	FederatedLogin(ctx context.Context, input FederatedLoginInput) (*AuthOutput, error)
	RequestPasswordReset(ctx context.Context, input RequestPasswordResetInput) error
	VerifyOtp(ctx context.Context, input VerifyOtpInput) (*VerifyOtpOutput, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
