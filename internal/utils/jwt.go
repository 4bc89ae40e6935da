// Package utils provides token creation and password hashing helpers.
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/laqshya/sports-facility-booking/internal/model"
)

// AccessToken is a signed HS256 JWT plus its expiry.  The token is sent
// in the Authorization header on protected endpoints.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// NewAccessToken signs an access token for the account.  Claims: sub
// (account id), role, exp and iat.
func NewAccessToken(secret string, accountID string, role model.Role, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  accountID,
		"role": string(role),
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// RandomSecret returns a hex string from 24 bytes of secure random
// data.  Used as the throwaway password of admin-created accounts.
func RandomSecret() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
