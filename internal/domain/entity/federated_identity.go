package entity

// FederatedIdentity is the verified assertion an identity provider makes about
// a person. It is never persisted.
type FederatedIdentity struct {
	Provider      string // e.g. "google"
	Subject       string // provider-side user id ("sub")
	Email         string
	EmailVerified bool
	Name          string
	AvatarURL     string
}
