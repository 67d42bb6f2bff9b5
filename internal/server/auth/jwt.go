// Package auth provides the token and password primitives used by the
// identity service: HS256 JWT mint/verify and bcrypt password hashing.
package auth

import (
	"time"

	"github.com/dmitrijs2005/phonebook/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the signed token payload: the account's username and id
// on top of the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	UserID   string `json:"id"`
}

// GenerateToken signs a {username, id} payload with the given secret.
// A zero validityDuration issues a token without an expiry claim.
func GenerateToken(username, userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	claims := Claims{
		Username: username,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if validityDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(validityDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and returns the decoded claims.
// Any signature mismatch or malformed input yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
