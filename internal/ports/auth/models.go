package auth

import "time"

// Claims representa la información extraída del token.
type Claims struct {
	UserID    string
	Email     string
	Name      string
	Role      string
	TokenID   string // jti, usado para revocar en logout
	ExpiresAt time.Time
}

// Subject es lo mínimo que se necesita para emitir un token.
type Subject struct {
	UserID string
	Email  string
	Name   string
	Role   string
}
