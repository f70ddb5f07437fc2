package domain

import "time"

const (
	EventAccountConnected = "account.connected"
	EventTokenExpiring    = "token.expiring"
)

type AccountConnectedEvent struct {
	UserID            string    `json:"user_id"`
	Provider          Provider  `json:"provider"`
	ProviderAccountID string    `json:"provider_account_id"`
	Username          string    `json:"username,omitempty"`
	TokenExpiresAt    time.Time `json:"token_expires_at"`
	ConnectedAt       time.Time `json:"connected_at"`
}

type TokenExpiringEvent struct {
	UserID            string    `json:"user_id"`
	Provider          Provider  `json:"provider"`
	ProviderAccountID string    `json:"provider_account_id"`
	TokenExpiresAt    time.Time `json:"token_expires_at"`
	Expired           bool      `json:"expired"`
}
