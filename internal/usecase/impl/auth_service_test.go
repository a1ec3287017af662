package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"todo/config"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/errors"
	mockRepo "todo/internal/mocks/repository"
	mockSvc "todo/internal/mocks/service"
	"todo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      *authService
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	federated    *mockSvc.MockFederatedLoginClient
	mailer       *mockSvc.MockMailSender
	secrets      *mockSvc.MockSecretGenerator
}

// txRepos are the repositories handed out inside a mocked transaction.
type txRepos struct {
	user   *mockRepo.MockUserRepository
	otp    *mockRepo.MockOtpRepository
	ticket *mockRepo.MockResetTicketRepository
}

func newTestConfig(reveal bool) *config.Config {
	cfg := &config.Config{}
	cfg.OTP.TTL = 5 * time.Minute
	cfg.OTP.ResetTicketTTL = 10 * time.Minute
	cfg.OTP.RevealUnknownEmail = &reveal

	return cfg
}

func createTestAuthService(t *testing.T, reveal bool) authServiceFixtures {
	f := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		federated:    mockSvc.NewMockFederatedLoginClient(t),
		mailer:       mockSvc.NewMockMailSender(t),
		secrets:      mockSvc.NewMockSecretGenerator(t),
	}

	f.service = newAuthService(AuthServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Federated:    f.federated,
		Mailer:       f.mailer,
		Secrets:      f.secrets,
		Config:       newTestConfig(reveal),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, func() time.Time { return fixedNow })

	return f
}

// expectTx makes the next Execute run its callback against fresh repository mocks.
func (f authServiceFixtures) expectTx(t *testing.T) txRepos {
	repos := txRepos{
		user:   mockRepo.NewMockUserRepository(t),
		otp:    mockRepo.NewMockOtpRepository(t),
		ticket: mockRepo.NewMockResetTicketRepository(t),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(repos.user).Maybe()
	factory.EXPECT().NewOtpRepository().Return(repos.otp).Maybe()
	factory.EXPECT().NewResetTicketRepository().Return(repos.ticket).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()

	return repos
}

func strPtr(s string) *string { return &s }

func TestAuthService_Login_Success(t *testing.T) {
	f := createTestAuthService(t, true)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", PasswordHash: strPtr("digest"), AvatarURL: strPtr("https://img/a.png")}
	expiresAt := fixedNow.Add(24 * time.Hour)

	f.userRepo.EXPECT().FindByEmail(ctx, "ann@x.com").Return(user, nil)
	f.hasher.EXPECT().Check("Secret123", "digest").Return(true)
	f.tokenService.EXPECT().Issue("ann@x.com").Return("signed", expiresAt, nil)

	out, err := f.service.Login(ctx, usecase.LoginInput{Email: "ann@x.com", Password: "Secret123"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, out.ID)
	assert.Equal(t, "Ann", out.Name)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, "https://img/a.png", out.Avatar)
	assert.Equal(t, expiresAt, out.ExpiresAt)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email runs a padding comparison", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)
		f.hasher.EXPECT().Hash(timingPadPassword).Return("pad-digest", nil).Once()
		f.hasher.EXPECT().Check("whatever", "pad-digest").Return(false)

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "nobody@x.com", Password: "whatever"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.userRepo.EXPECT().FindByEmail(ctx, "ann@x.com").Return(&entity.User{Email: "ann@x.com", PasswordHash: strPtr("digest")}, nil)
		f.hasher.EXPECT().Check("wrong", "digest").Return(false)

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ann@x.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("federated-only account", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.userRepo.EXPECT().FindByEmail(ctx, "fed@x.com").Return(&entity.User{Email: "fed@x.com"}, nil)
		f.hasher.EXPECT().Hash(timingPadPassword).Return("pad-digest", nil).Once()
		f.hasher.EXPECT().Check("Secret123", "pad-digest").Return(false)

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "fed@x.com", Password: "Secret123"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	f := createTestAuthService(t, true)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ann@x.com").Return(nil, errors.New("connection reset"))

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ann@x.com", Password: "Secret123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	input := usecase.SignupInput{Name: "Ann", Email: "ann@x.com", Password: "Secret123", Confirm: "Secret123"}

	t.Run("success", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.hasher.EXPECT().ValidatePasswordStrength("Secret123").Return(nil)
		f.userRepo.EXPECT().ExistsByEmail(ctx, "ann@x.com").Return(false, nil)
		f.hasher.EXPECT().Hash("Secret123").Return("digest", nil)
		f.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ann@x.com" && u.Name == "Ann" && u.PasswordHash != nil && *u.PasswordHash == "digest"
		})).Run(func(_ context.Context, u *entity.User) {
			u.ID = uuid.New()
		}).Return(nil)

		out, err := f.service.Signup(ctx, input)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, out.ID)
		assert.Equal(t, "ann@x.com", out.Email)
	})

	t.Run("mismatch wins over weak password", func(t *testing.T) {
		f := createTestAuthService(t, true)

		_, err := f.service.Signup(ctx, usecase.SignupInput{Name: "Ann", Email: "ann@x.com", Password: "a", Confirm: "b"})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	})

	t.Run("weak password wins over taken email", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.hasher.EXPECT().ValidatePasswordStrength("short").Return(domainerrors.ErrWeakPassword.WithDetails("too short"))

		_, err := f.service.Signup(ctx, usecase.SignupInput{Name: "Ann", Email: "ann@x.com", Password: "short", Confirm: "short"})
		assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
	})

	t.Run("email taken", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.hasher.EXPECT().ValidatePasswordStrength("Secret123").Return(nil)
		f.userRepo.EXPECT().ExistsByEmail(ctx, "ann@x.com").Return(true, nil)

		_, err := f.service.Signup(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})

	t.Run("insert race maps to email taken", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.hasher.EXPECT().ValidatePasswordStrength("Secret123").Return(nil)
		f.userRepo.EXPECT().ExistsByEmail(ctx, "ann@x.com").Return(false, nil)
		f.hasher.EXPECT().Hash("Secret123").Return("digest", nil)
		f.userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrEmailTaken.WrapMessage("failed to create user"))

		_, err := f.service.Signup(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})
}

func TestAuthService_FederatedLogin(t *testing.T) {
	ctx := context.Background()
	identity := &entity.FederatedIdentity{Provider: "google", Subject: "g-1", Email: "ann@x.com", EmailVerified: true, Name: "Ann", AvatarURL: "https://img/a.png"}

	t.Run("missing credentials", func(t *testing.T) {
		f := createTestAuthService(t, true)

		_, err := f.service.FederatedLogin(ctx, usecase.FederatedLoginInput{})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("first login creates account without password", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.federated.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)
		f.userRepo.EXPECT().CreateIfAbsent(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ann@x.com" && u.PasswordHash == nil && u.AvatarURL != nil
		})).RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, bool, error) {
			u.ID = uuid.New()
			return u, true, nil
		})
		f.tokenService.EXPECT().Issue("ann@x.com").Return("signed", fixedNow.Add(time.Hour), nil)

		out, err := f.service.FederatedLogin(ctx, usecase.FederatedLoginInput{IDToken: "id-token"})
		require.NoError(t, err)
		assert.Equal(t, "signed", out.Token)
		assert.Equal(t, "https://img/a.png", out.Avatar)
	})

	t.Run("code exchange backfills missing avatar", func(t *testing.T) {
		f := createTestAuthService(t, true)
		existing := &entity.User{ID: uuid.New(), Email: "ann@x.com", Name: "Ann", PasswordHash: strPtr("digest")}

		f.federated.EXPECT().ExchangeCode(ctx, "auth-code", "http://localhost:5173").Return(identity, nil)
		f.userRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(existing, false, nil)
		f.userRepo.EXPECT().UpdateAvatarIfEmpty(ctx, existing.ID, "https://img/a.png").Return(true, nil)
		f.tokenService.EXPECT().Issue("ann@x.com").Return("signed", fixedNow.Add(time.Hour), nil)

		out, err := f.service.FederatedLogin(ctx, usecase.FederatedLoginInput{Code: "auth-code", RedirectURI: "http://localhost:5173"})
		require.NoError(t, err)
		assert.Equal(t, "https://img/a.png", out.Avatar)
	})

	t.Run("existing avatar is kept", func(t *testing.T) {
		f := createTestAuthService(t, true)
		existing := &entity.User{ID: uuid.New(), Email: "ann@x.com", Name: "Ann", AvatarURL: strPtr("https://img/mine.png")}

		f.federated.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)
		f.userRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(existing, false, nil)
		f.tokenService.EXPECT().Issue("ann@x.com").Return("signed", fixedNow.Add(time.Hour), nil)

		out, err := f.service.FederatedLogin(ctx, usecase.FederatedLoginInput{IDToken: "id-token"})
		require.NoError(t, err)
		assert.Equal(t, "https://img/mine.png", out.Avatar)
	})

	t.Run("backfill failure does not fail login", func(t *testing.T) {
		f := createTestAuthService(t, true)
		existing := &entity.User{ID: uuid.New(), Email: "ann@x.com", Name: "Ann"}

		f.federated.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)
		f.userRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(existing, false, nil)
		f.userRepo.EXPECT().UpdateAvatarIfEmpty(ctx, existing.ID, "https://img/a.png").Return(false, errors.New("timeout"))
		f.tokenService.EXPECT().Issue("ann@x.com").Return("signed", fixedNow.Add(time.Hour), nil)

		out, err := f.service.FederatedLogin(ctx, usecase.FederatedLoginInput{IDToken: "id-token"})
		require.NoError(t, err)
		assert.Empty(t, out.Avatar)
	})

	t.Run("empty name falls back to email", func(t *testing.T) {
		f := createTestAuthService(t, true)
		nameless := &entity.FederatedIdentity{Provider: "google", Email: "ann@x.com", EmailVerified: true}

		f.federated.EXPECT().VerifyIDToken(ctx, "id-token").Return(nameless, nil)
		f.userRepo.EXPECT().CreateIfAbsent(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "ann@x.com" && u.AvatarURL == nil
		})).RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, bool, error) {
			return u, true, nil
		})
		f.tokenService.EXPECT().Issue("ann@x.com").Return("signed", fixedNow.Add(time.Hour), nil)

		out, err := f.service.FederatedLogin(ctx, usecase.FederatedLoginInput{IDToken: "id-token"})
		require.NoError(t, err)
		assert.Equal(t, "ann@x.com", out.Name)
	})

	t.Run("long provider name is clamped", func(t *testing.T) {
		f := createTestAuthService(t, true)
		long := &entity.FederatedIdentity{Provider: "google", Email: "ann@x.com", EmailVerified: true, Name: strings.Repeat("é", entity.MaxNameLength+20)}

		f.federated.EXPECT().VerifyIDToken(ctx, "id-token").Return(long, nil)
		f.userRepo.EXPECT().CreateIfAbsent(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == strings.Repeat("é", entity.MaxNameLength)
		})).RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, bool, error) {
			return u, true, nil
		})
		f.tokenService.EXPECT().Issue("ann@x.com").Return("signed", fixedNow.Add(time.Hour), nil)

		out, err := f.service.FederatedLogin(ctx, usecase.FederatedLoginInput{IDToken: "id-token"})
		require.NoError(t, err)
		assert.Equal(t, entity.MaxNameLength, utf8.RuneCountInString(out.Name))
	})

	t.Run("provider rejection", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.federated.EXPECT().ExchangeCode(ctx, "bad", "").Return(nil, domainerrors.ErrFederatedExchangeFailed.WithDetails("invalid_grant"))

		_, err := f.service.FederatedLogin(ctx, usecase.FederatedLoginInput{Code: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrFederatedExchangeFailed)
	})
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()
	input := usecase.RequestPasswordResetInput{Email: "ann@x.com"}

	t.Run("replaces live otp and mails it", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.secrets.EXPECT().OtpCode().Return("012345", nil)
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.user.EXPECT().ExistsByEmail(ctx, "ann@x.com").Return(true, nil)
		repos.otp.EXPECT().DeleteByEmail(ctx, "ann@x.com").Return(1, nil)
		repos.otp.EXPECT().Create(ctx, mock.MatchedBy(func(o *entity.Otp) bool {
			return o.Email == "ann@x.com" && o.Code == "012345" && o.ExpiresAt.Equal(fixedNow.Add(5*time.Minute))
		})).Return(nil)
		f.mailer.EXPECT().Send(ctx, "ann@x.com", "Your OTP for Password Reset", "Your OTP is: 012345\nThis OTP is valid for 5 minutes.").Return(nil)

		require.NoError(t, f.service.RequestPasswordReset(ctx, input))
	})

	t.Run("unknown email is reported", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.secrets.EXPECT().OtpCode().Return("012345", nil)
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.user.EXPECT().ExistsByEmail(ctx, "ann@x.com").Return(false, nil)

		err := f.service.RequestPasswordReset(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrEmailNotFound)
	})

	t.Run("unknown email is hidden when configured", func(t *testing.T) {
		f := createTestAuthService(t, false)
		f.secrets.EXPECT().OtpCode().Return("012345", nil)
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.user.EXPECT().ExistsByEmail(ctx, "ann@x.com").Return(false, nil)

		assert.NoError(t, f.service.RequestPasswordReset(ctx, input))
	})

	t.Run("mail failure keeps otp", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.secrets.EXPECT().OtpCode().Return("012345", nil)
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.user.EXPECT().ExistsByEmail(ctx, "ann@x.com").Return(true, nil)
		repos.otp.EXPECT().DeleteByEmail(ctx, "ann@x.com").Return(0, nil)
		repos.otp.EXPECT().Create(ctx, mock.Anything).Return(nil)
		f.mailer.EXPECT().Send(ctx, "ann@x.com", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		err := f.service.RequestPasswordReset(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
	})
}

func TestAuthService_VerifyOtp(t *testing.T) {
	ctx := context.Background()
	input := usecase.VerifyOtpInput{Email: "ann@x.com", OtpCode: "012345"}

	t.Run("valid otp is consumed and a ticket issued", func(t *testing.T) {
		f := createTestAuthService(t, true)
		otpID := uuid.New()
		f.secrets.EXPECT().ResetToken().Return("ticket", "ticket-hash", nil)
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.otp.EXPECT().FindByEmailAndCode(ctx, "ann@x.com", "012345").
			Return(&entity.Otp{ID: otpID, Email: "ann@x.com", Code: "012345", ExpiresAt: fixedNow.Add(time.Minute)}, nil)
		repos.otp.EXPECT().Delete(ctx, otpID).Return(nil)
		repos.ticket.EXPECT().Create(ctx, mock.MatchedBy(func(rt *entity.ResetTicket) bool {
			return rt.Email == "ann@x.com" && rt.TokenHash == "ticket-hash"
		})).Return(nil)

		out, err := f.service.VerifyOtp(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "ticket", out.ResetToken)
		assert.Equal(t, fixedNow.Add(10*time.Minute), out.ExpiresAt)
	})

	t.Run("no matching otp", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.secrets.EXPECT().ResetToken().Return("ticket", "ticket-hash", nil)
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.otp.EXPECT().FindByEmailAndCode(ctx, "ann@x.com", "012345").Return(nil, repository.ErrOtpNotFound)

		_, err := f.service.VerifyOtp(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidOtp)
	})

	t.Run("expired otp is deleted and committed", func(t *testing.T) {
		f := createTestAuthService(t, true)
		otpID := uuid.New()
		f.secrets.EXPECT().ResetToken().Return("ticket", "ticket-hash", nil)
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.otp.EXPECT().FindByEmailAndCode(ctx, "ann@x.com", "012345").
			Return(&entity.Otp{ID: otpID, Email: "ann@x.com", Code: "012345", ExpiresAt: fixedNow.Add(-time.Second)}, nil)
		repos.otp.EXPECT().Delete(ctx, otpID).Return(nil)

		_, err := f.service.VerifyOtp(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrOtpExpired)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	input := usecase.ChangePasswordInput{Email: "ann@x.com", Password: "NewSecret1", Confirm: "NewSecret1", ResetToken: "ticket"}
	user := &entity.User{ID: uuid.New(), Email: "ann@x.com", PasswordHash: strPtr("old")}

	t.Run("success revokes reset credentials", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.hasher.EXPECT().ValidatePasswordStrength("NewSecret1").Return(nil)
		f.hasher.EXPECT().Hash("NewSecret1").Return("new-digest", nil)
		f.secrets.EXPECT().HashResetToken("ticket").Return("ticket-hash")
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.user.EXPECT().FindByEmail(ctx, "ann@x.com").Return(user, nil)
		repos.ticket.EXPECT().FindByEmailAndHash(ctx, "ann@x.com", "ticket-hash").
			Return(&entity.ResetTicket{Email: "ann@x.com", TokenHash: "ticket-hash", ExpiresAt: fixedNow.Add(time.Minute)}, nil)
		repos.user.EXPECT().UpdatePasswordHash(ctx, user.ID, "new-digest").Return(nil)
		repos.otp.EXPECT().DeleteByEmail(ctx, "ann@x.com").Return(0, nil)
		repos.ticket.EXPECT().DeleteByEmail(ctx, "ann@x.com").Return(1, nil)

		require.NoError(t, f.service.ChangePassword(ctx, input))
	})

	t.Run("mismatch", func(t *testing.T) {
		f := createTestAuthService(t, true)

		err := f.service.ChangePassword(ctx, usecase.ChangePasswordInput{Email: "ann@x.com", Password: "a", Confirm: "b"})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.hasher.EXPECT().ValidatePasswordStrength("NewSecret1").Return(nil)
		f.hasher.EXPECT().Hash("NewSecret1").Return("new-digest", nil)
		f.secrets.EXPECT().HashResetToken("ticket").Return("ticket-hash")
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.user.EXPECT().FindByEmail(ctx, "ann@x.com").Return(nil, repository.ErrUserNotFound)

		err := f.service.ChangePassword(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrEmailNotFound)
	})

	t.Run("ticket checked before lookup when unknown emails are hidden", func(t *testing.T) {
		f := createTestAuthService(t, false)
		f.hasher.EXPECT().ValidatePasswordStrength("NewSecret1").Return(nil)
		f.hasher.EXPECT().Hash("NewSecret1").Return("new-digest", nil)
		f.secrets.EXPECT().HashResetToken("ticket").Return("ticket-hash")
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.ticket.EXPECT().FindByEmailAndHash(ctx, "ann@x.com", "ticket-hash").Return(nil, repository.ErrResetTicketNotFound)

		err := f.service.ChangePassword(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetTicket)
	})

	t.Run("expired ticket", func(t *testing.T) {
		f := createTestAuthService(t, true)
		f.hasher.EXPECT().ValidatePasswordStrength("NewSecret1").Return(nil)
		f.hasher.EXPECT().Hash("NewSecret1").Return("new-digest", nil)
		f.secrets.EXPECT().HashResetToken("ticket").Return("ticket-hash")
		repos := f.expectTx(t)
		repos.otp.EXPECT().AcquireEmailLock(ctx, "ann@x.com").Return(nil)
		repos.user.EXPECT().FindByEmail(ctx, "ann@x.com").Return(user, nil)
		repos.ticket.EXPECT().FindByEmailAndHash(ctx, "ann@x.com", "ticket-hash").
			Return(&entity.ResetTicket{Email: "ann@x.com", ExpiresAt: fixedNow.Add(-time.Second)}, nil)

		err := f.service.ChangePassword(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetTicket)
	})
}
