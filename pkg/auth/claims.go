package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the identity data available when minting a JWT.
type AccessTokenPayload struct {
	UserID   int64
	Username string
	Email    string
}

// AccessTokenClaims represents the typed JWT issued to clients. Subject holds
// the user id as a decimal string.
type AccessTokenClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
