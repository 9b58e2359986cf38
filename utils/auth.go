package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// ErrInvalidToken is returned for tokens that fail to parse or verify
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims represents the JWT claims of a session token
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.StandardClaims
}

// TokenIssuer signs and verifies session tokens
type TokenIssuer struct {
	key []byte
}

// NewTokenIssuer creates an issuer using an HS256 secret
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{key: []byte(secret)}
}

// GenerateSessionToken generates a token for the session that expires at expiresAt
func (ti *TokenIssuer) GenerateSessionToken(sessionID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := &SessionClaims{
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			Id:        sessionID,
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ti.key)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ParseSessionToken verifies the token and returns its claims
func (ti *TokenIssuer) ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return ti.key, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
