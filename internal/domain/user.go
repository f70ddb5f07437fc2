package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims do JWT de sessão emitido pelo Supabase Auth
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID é o "sub" do token
func (c *Claims) UserID() string {
	return c.Subject
}
