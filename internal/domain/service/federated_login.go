package service

import (
	"context"

	"todo/internal/domain/entity"
)

// FederatedLoginClient turns provider credentials into a verified identity.
// Failures are reported as domainerrors.ErrFederatedExchangeFailed.
type FederatedLoginClient interface {
	// ExchangeCode redeems an authorization code at the provider's token
	// endpoint and verifies the identity token it returns.
	ExchangeCode(ctx context.Context, code, redirectURI string) (*entity.FederatedIdentity, error)

	// VerifyIDToken checks a provider-issued identity token against the
	// provider's public keys with the audience pinned to our client id.
	VerifyIDToken(ctx context.Context, idToken string) (*entity.FederatedIdentity, error)
}
