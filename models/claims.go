package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload minted at signup/login and carried in the
// session cookie.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
