package domain

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Escopos concedidos aos clientes do gateway
const (
	ScopeOrdersWrite  = "orders:write"
	ScopeOrdersRead   = "orders:read"
	ScopeQuotesRead   = "quotes:read"
	ScopeInvoicesRead = "invoices:read"
	ScopeCronRun      = "cron:run"
)

type Claims struct {
	ClientID string   `json:"client_id"`
	Scopes   []string `json:"scopes"`
	jwt.RegisteredClaims
}

func (c *Claims) HasScope(scope string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Scopes, scope)
}

type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	Scopes      []string `json:"scopes"`
}
