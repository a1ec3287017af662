// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"todo/internal/delivery/api/response"
	"todo/internal/delivery/api/validator"
	deliverycontext "todo/internal/delivery/context"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler exposes the authentication usecase over HTTP.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required"`
}

// GoogleLoginRequest accepts either an authorization code or an ID token.
type GoogleLoginRequest struct {
	Code        string `json:"code" validate:"required_without=IDToken"`
	RedirectURI string `json:"redirectUri" validate:"omitempty,url"`
	IDToken     string `json:"idToken" validate:"required_without=Code"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOtpRequest struct {
	Email   string `json:"email" validate:"required,email"`
	OtpCode string `json:"otpCode" validate:"required,len=6,numeric"`
}

type ChangePasswordRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Confirm    string `json:"confirm" validate:"required"`
	ResetToken string `json:"resetToken" validate:"required"`
}

// AuthResponse is returned by both login endpoints.
type AuthResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	Avatar    string    `json:"avatar"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type VerifyOtpResponse struct {
	Message    string    `json:"message"`
	ResetToken string    `json:"resetToken"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type MeResponse struct {
	Email string `json:"email"`
}

// bind decodes and validates req, writing the 400 itself on failure.
func bind(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, validator.FieldErrors(err))
	}

	return true, nil
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	_, err := h.authUC.Signup(c.Request().Context(), usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Confirm:  req.Confirm,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusCreated, "Signup successful")
}

// GoogleLogin handles POST /api/auth/google-login.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	output, err := h.authUC.FederatedLogin(c.Request().Context(), usecase.FederatedLoginInput{
		Code:        req.Code,
		RedirectURI: req.RedirectURI,
		IDToken:     req.IDToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	err := h.authUC.RequestPasswordReset(c.Request().Context(), usecase.RequestPasswordResetInput{Email: req.Email})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "OTP sent to your email")
}

// VerifyOtp handles POST /api/auth/verify-otp.
func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req VerifyOtpRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	output, err := h.authUC.VerifyOtp(c.Request().Context(), usecase.VerifyOtpInput{
		Email:   req.Email,
		OtpCode: req.OtpCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VerifyOtpResponse{
		Message:    "OTP verified",
		ResetToken: output.ResetToken,
		ExpiresAt:  output.ExpiresAt,
	})
}

// ChangePassword handles POST /api/auth/change-password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}

	err := h.authUC.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		Email:      req.Email,
		Password:   req.Password,
		Confirm:    req.Confirm,
		ResetToken: req.ResetToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Password changed successfully")
}

// Me handles GET /api/auth/me. It runs behind AuthMiddleware.Authenticate.
func (h *AuthHandler) Me(c echo.Context) error {
	subject, ok := deliverycontext.SubjectFromContext(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
	}

	return response.Success(c, http.StatusOK, MeResponse{Email: subject})
}

func toAuthResponse(output *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		ID:        output.ID.String(),
		Name:      output.Name,
		Email:     output.Email,
		Token:     output.Token,
		Avatar:    output.Avatar,
		ExpiresAt: output.ExpiresAt,
	}
}
