// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"todo/config"
	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/domain/service"
	"todo/internal/errors"
	"todo/internal/usecase"

	"go.uber.org/fx"
)

const (
	resetMailSubject = "Your OTP for Password Reset"

	// hashed once and compared against when no usable digest exists
	timingPadPassword = "timing-pad-password"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	federated    service.FederatedLoginClient
	mailer       service.MailSender
	secrets      service.SecretGenerator

	otpTTL             time.Duration
	ticketTTL          time.Duration
	revealUnknownEmail bool

	dummyHash func() string
	now       func() time.Time
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Federated    service.FederatedLoginClient
	Mailer       service.MailSender
	Secrets      service.SecretGenerator
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return newAuthService(params, time.Now)
}

func newAuthService(params AuthServiceParams, now func() time.Time) *authService {
	hasher := params.Hasher

	return &authService{
		txManager:          params.TxManager,
		userRepo:           params.UserRepo,
		hasher:             hasher,
		tokenService:       params.TokenService,
		federated:          params.Federated,
		mailer:             params.Mailer,
		secrets:            params.Secrets,
		otpTTL:             params.Config.OTP.TTL,
		ticketTTL:          params.Config.OTP.ResetTicketTTL,
		revealUnknownEmail: params.Config.OTP.Reveal(),
		dummyHash: sync.OnceValue(func() string {
			hash, err := hasher.Hash(timingPadPassword)
			if err != nil {
				return ""
			}

			return hash
		}),
		now:    now,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates with email and password. Every failure mode looks the
// same to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.dummyHash())

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.HasPassword() {
		srv.hasher.Check(input.Password, srv.dummyHash())
		srv.log(ctx).Debug("Password login refused for federated-only account", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !srv.hasher.Check(input.Password, *user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueAuth(ctx, user)
}

// Signup creates a password account. The caller logs in separately.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	if input.Password != input.Confirm {
		return nil, domainerrors.ErrPasswordMismatch
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	exists, err := srv.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if exists {
		return nil, domainerrors.ErrEmailTaken
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: &hash,
	}
	// A concurrent signup that wins the insert surfaces here as ErrEmailTaken.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", user.ID))

	return &usecase.SignupOutput{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// FederatedLogin signs in with a Google identity, creating the account on
// first use.
func (srv *authService) FederatedLogin(ctx context.Context, input usecase.FederatedLoginInput) (*usecase.AuthOutput, error) {
	var (
		identity *entity.FederatedIdentity
		err      error
	)
	switch {
	case input.IDToken != "":
		identity, err = srv.federated.VerifyIDToken(ctx, input.IDToken)
	case input.Code != "":
		identity, err = srv.federated.ExchangeCode(ctx, input.Code, input.RedirectURI)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("code or idToken is required")
	}
	if err != nil {
		srv.log(ctx).Warn("Federated login rejected", slog.Any("error", err))

		return nil, err
	}

	name := identity.Name
	if name == "" {
		name = identity.Email
	}
	candidate := &entity.User{
		Email: identity.Email,
		Name:  entity.ClampName(name),
	}
	if identity.AvatarURL != "" {
		avatar := identity.AvatarURL
		candidate.AvatarURL = &avatar
	}

	user, created, err := srv.userRepo.CreateIfAbsent(ctx, candidate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve federated user")
	}

	if created {
		srv.log(ctx).Info("User created through federated login", slog.Any("userID", user.ID), slog.String("provider", identity.Provider))
	} else if identity.AvatarURL != "" && !user.HasAvatar() {
		srv.backfillAvatar(ctx, user, identity.AvatarURL)
	}

	return srv.issueAuth(ctx, user)
}

func (srv *authService) backfillAvatar(ctx context.Context, user *entity.User, avatarURL string) {
	updated, err := srv.userRepo.UpdateAvatarIfEmpty(ctx, user.ID, avatarURL)
	if err != nil {
		srv.log(ctx).Warn("Failed to backfill avatar", slog.Any("userID", user.ID), slog.Any("error", err))

		return
	}
	if updated {
		user.AvatarURL = &avatarURL
	}
}

// RequestPasswordReset replaces any live OTP of the email and mails the new one.
func (srv *authService) RequestPasswordReset(ctx context.Context, input usecase.RequestPasswordResetInput) error {
	code, err := srv.secrets.OtpCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate otp")
	}

	known := false
	now := srv.now()
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.NewOtpRepository()
		if err := otpRepo.AcquireEmailLock(ctx, input.Email); err != nil {
			return errors.Wrap(err, "failed to lock email")
		}

		exists, err := repoFactory.NewUserRepository().ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if !exists {
			if srv.revealUnknownEmail {
				return domainerrors.ErrEmailNotFound
			}

			return nil
		}
		known = true

		if _, err := otpRepo.DeleteByEmail(ctx, input.Email); err != nil {
			return errors.Wrap(err, "failed to delete previous otps")
		}

		return errors.Wrap(otpRepo.Create(ctx, &entity.Otp{
			Email:     input.Email,
			Code:      code,
			CreatedAt: now,
			ExpiresAt: now.Add(srv.otpTTL),
		}), "failed to store otp")
	})
	if err != nil {
		return err
	}

	if !known {
		srv.log(ctx).Debug("Password reset requested for unknown email")

		return nil
	}

	if err := srv.mailer.Send(ctx, input.Email, resetMailSubject, srv.resetMailBody(code)); err != nil {
		// The OTP stays; the user can retry or request a new one.
		srv.log(ctx).Error("Failed to send reset mail", slog.Any("error", err))

		return domainerrors.ErrMailDeliveryFailed
	}

	srv.log(ctx).Info("Password reset OTP sent")

	return nil
}

func (srv *authService) resetMailBody(code string) string {
	minutes := int(math.Ceil(srv.otpTTL.Minutes()))

	return fmt.Sprintf("Your OTP is: %s\nThis OTP is valid for %d minutes.", code, minutes)
}

// VerifyOtp consumes a matching OTP and issues a reset ticket. An expired OTP
// is consumed as well before the expiry is reported.
func (srv *authService) VerifyOtp(ctx context.Context, input usecase.VerifyOtpInput) (*usecase.VerifyOtpOutput, error) {
	token, tokenHash, err := srv.secrets.ResetToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset ticket")
	}

	var (
		output  *usecase.VerifyOtpOutput
		expired bool
	)
	now := srv.now()
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.NewOtpRepository()
		if err := otpRepo.AcquireEmailLock(ctx, input.Email); err != nil {
			return errors.Wrap(err, "failed to lock email")
		}

		otp, err := otpRepo.FindByEmailAndCode(ctx, input.Email, input.OtpCode)
		if errors.Is(err, repository.ErrOtpNotFound) {
			return domainerrors.ErrInvalidOtp
		}
		if err != nil {
			return errors.Wrap(err, "failed to find otp")
		}

		if err := otpRepo.Delete(ctx, otp.ID); err != nil {
			return errors.Wrap(err, "failed to consume otp")
		}
		if otp.IsExpired(now) {
			// commit the deletion, report after
			expired = true

			return nil
		}

		ticket := &entity.ResetTicket{
			Email:     input.Email,
			TokenHash: tokenHash,
			CreatedAt: now,
			ExpiresAt: now.Add(srv.ticketTTL),
		}
		if err := repoFactory.NewResetTicketRepository().Create(ctx, ticket); err != nil {
			return errors.Wrap(err, "failed to store reset ticket")
		}

		output = &usecase.VerifyOtpOutput{
			ResetToken: token,
			ExpiresAt:  ticket.ExpiresAt,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, domainerrors.ErrOtpExpired
	}

	return output, nil
}

// ChangePassword sets a new password for an email holding a valid reset ticket
// and revokes every outstanding reset credential of that email.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	if input.Password != input.Confirm {
		return domainerrors.ErrPasswordMismatch
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	tokenHash := srv.secrets.HashResetToken(input.ResetToken)
	now := srv.now()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.NewOtpRepository()
		ticketRepo := repoFactory.NewResetTicketRepository()
		if err := otpRepo.AcquireEmailLock(ctx, input.Email); err != nil {
			return errors.Wrap(err, "failed to lock email")
		}

		checkTicket := func() error {
			ticket, err := ticketRepo.FindByEmailAndHash(ctx, input.Email, tokenHash)
			if errors.Is(err, repository.ErrResetTicketNotFound) {
				return domainerrors.ErrInvalidResetTicket
			}
			if err != nil {
				return errors.Wrap(err, "failed to find reset ticket")
			}
			if ticket.IsExpired(now) {
				return domainerrors.ErrInvalidResetTicket
			}

			return nil
		}

		// Without a ticket nothing may reveal whether the email exists.
		if !srv.revealUnknownEmail {
			if err := checkTicket(); err != nil {
				return err
			}
		}

		user, err := repoFactory.NewUserRepository().FindByEmail(ctx, input.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrEmailNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if srv.revealUnknownEmail {
			if err := checkTicket(); err != nil {
				return err
			}
		}

		if err := repoFactory.NewUserRepository().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}
		if _, err := otpRepo.DeleteByEmail(ctx, input.Email); err != nil {
			return errors.Wrap(err, "failed to delete otps")
		}
		if _, err := ticketRepo.DeleteByEmail(ctx, input.Email); err != nil {
			return errors.Wrap(err, "failed to delete reset tickets")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed")

	return nil
}

func (srv *authService) issueAuth(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	output := &usecase.AuthOutput{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if user.AvatarURL != nil {
		output.Avatar = *user.AvatarURL
	}

	return output, nil
}
