// Package google implements federated login against Google's OAuth 2.0 and
// OpenID Connect endpoints.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"todo/config"
	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"
	"todo/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

const providerName = "google"

// IDTokenValidator is satisfied by *idtoken.Validator.
type IDTokenValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// ClientParams holds dependencies for the Google client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client implements service.FederatedLoginClient for Google.
type Client struct {
	cfg        config.GoogleOAuthConfig
	oauth      oauth2.Config
	validator  IDTokenValidator
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient wires the code exchange and ID token verification paths. Both use
// one http.Client bounded by googleOAuth.timeout.
func NewClient(params ClientParams) (service.FederatedLoginClient, error) {
	httpClient := &http.Client{Timeout: params.Config.GoogleOAuth.Timeout}

	validator, err := idtoken.NewValidator(context.Background(), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, errors.Wrap(err, "create google id token validator")
	}

	return newClient(params.Config.GoogleOAuth, validator, httpClient, params.Logger), nil
}

func newClient(cfg config.GoogleOAuthConfig, validator IDTokenValidator, httpClient *http.Client, logger *slog.Logger) *Client {
	endpoint := googleoauth.Endpoint
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &Client{
		cfg: cfg,
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			Scopes:       cfg.Scopes,
		},
		validator:  validator,
		httpClient: httpClient,
		logger:     logger,
	}
}

// ExchangeCode redeems an authorization code and verifies the returned id_token.
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (*entity.FederatedIdentity, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return nil, exchangeFailed("google code exchange is not configured")
	}

	redirectURI, err := c.resolveRedirectURI(redirectURI)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	conf := c.oauth
	conf.RedirectURL = redirectURI

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		c.log(ctx).Warn("Google token exchange failed", slog.Any("error", err))

		return nil, exchangeFailed("token exchange failed")
	}

	rawIDToken, _ := token.Extra("id_token").(string)
	if rawIDToken == "" {
		return nil, exchangeFailed("no id_token in token response")
	}

	return c.verify(ctx, rawIDToken)
}

// VerifyIDToken checks signature, expiry, issuer and audience of an id_token.
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*entity.FederatedIdentity, error) {
	if c.cfg.ClientID == "" {
		return nil, exchangeFailed("google login is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	return c.verify(ctx, idToken)
}

func (c *Client) verify(ctx context.Context, rawIDToken string) (*entity.FederatedIdentity, error) {
	payload, err := c.validator.Validate(ctx, rawIDToken, c.cfg.ClientID)
	if err != nil {
		c.log(ctx).Warn("Google id token rejected", slog.Any("error", err))

		return nil, exchangeFailed("id token verification failed")
	}

	identity := identityFromPayload(payload)
	if identity.Email == "" {
		return nil, exchangeFailed("id token carries no email")
	}
	if !identity.EmailVerified && !c.cfg.AllowUnverifiedEmail {
		return nil, exchangeFailed("google email is not verified")
	}

	return identity, nil
}

func (c *Client) resolveRedirectURI(redirectURI string) (string, error) {
	if redirectURI == "" {
		redirectURI = c.cfg.DefaultRedirectURI
	}
	if redirectURI == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("redirectUri is required")
	}
	if len(c.cfg.AllowedRedirectURIs) > 0 && !slices.Contains(c.cfg.AllowedRedirectURIs, redirectURI) {
		return "", exchangeFailed("redirect uri is not allowed")
	}

	return redirectURI, nil
}

func identityFromPayload(payload *idtoken.Payload) *entity.FederatedIdentity {
	identity := &entity.FederatedIdentity{
		Provider: providerName,
		Subject:  payload.Subject,
	}

	identity.Email, _ = payload.Claims["email"].(string)
	identity.Name, _ = payload.Claims["name"].(string)
	identity.AvatarURL, _ = payload.Claims["picture"].(string)

	switch v := payload.Claims["email_verified"].(type) {
	case bool:
		identity.EmailVerified = v
	case string:
		identity.EmailVerified = v == "true"
	}

	return identity
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func exchangeFailed(details string) error {
	return domainerrors.ErrFederatedExchangeFailed.WithDetails(details)
}
