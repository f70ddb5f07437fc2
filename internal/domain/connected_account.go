package domain

import "time"

type Provider string

const (
	ProviderFacebook  Provider = "facebook"
	ProviderInstagram Provider = "instagram"

	// Usado quando o provedor não informa expires_in (60 dias)
	DefaultTokenLifetimeSeconds int64 = 5184000
)

// ConnectedAccount é a credencial persistida; (UserID, Provider, ProviderAccountID) é único
type ConnectedAccount struct {
	ID                string
	UserID            string
	Provider          Provider
	ProviderAccountID string
	AccessToken       string
	TokenExpiresAt    *time.Time
	AccountUsername   string
	AccountName       string
	ProfilePictureURL string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsExpired considera expirado o token cujo vencimento já chegou; sem vencimento nunca expira
func (a *ConnectedAccount) IsExpired(now time.Time) bool {
	return a.TokenExpiresAt != nil && !a.TokenExpiresAt.After(now)
}

// TokenExpiresAt calcula o vencimento a partir de expires_in (segundos)
func TokenExpiresAt(now time.Time, expiresIn int64) time.Time {
	if expiresIn <= 0 {
		expiresIn = DefaultTokenLifetimeSeconds
	}
	return now.Add(time.Duration(expiresIn) * time.Second)
}

// InstagramToken é a resposta do /get-instagram-token
type InstagramToken struct {
	AccessToken     string `json:"access_token"`
	InstagramUserID string `json:"instagram_user_id"`
}
