// Package auth builds and signs identity tokens for authenticated users.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/matchly/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// MinSecretKeyLength is the minimum accepted HMAC key size in bytes.
// Shorter keys are rejected at construction so the server never starts
// with a weak or absent secret.
const MinSecretKeyLength = 32

// Claims is the claim set embedded in issued tokens: the registered claims
// plus the user's ID and username.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"username"`
}

// Issuer signs identity tokens with HMAC-SHA512. The key and validity
// duration are fixed at construction and safe for concurrent use.
type Issuer struct {
	secretKey []byte
	ttl       time.Duration
}

// NewIssuer validates the secret key and returns an Issuer whose tokens
// expire ttl after issuance. A key shorter than MinSecretKeyLength yields
// common.ErrWeakSecretKey.
func NewIssuer(secretKey []byte, ttl time.Duration) (*Issuer, error) {
	if len(secretKey) < MinSecretKeyLength {
		return nil, common.ErrWeakSecretKey
	}
	return &Issuer{secretKey: secretKey, ttl: ttl}, nil
}

// Issue returns a signed compact token carrying the user's ID and username,
// with exp set to issuance time plus the configured validity duration.
func (i *Issuer) Issue(userID string, username string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of a token produced by Issue
// and returns its claims. Only HS512 is accepted.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
