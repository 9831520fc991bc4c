package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessToken is a signed HS256 JWT plus its expiry.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// NewAccessToken builds and signs a JWT for a user. Claims: sub (user id),
// exp and iat.
func NewAccessToken(secret string, userID uuid.UUID, expiryHours int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(expiryHours) * time.Hour)

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, fmt.Errorf("sign token: %w", err)
	}

	return AccessToken{Token: signed, ExpiresAt: exp}, nil
}

// ParseAccessToken validates the signature and expiry of a JWT and returns
// the user id from the sub claim.
func ParseAccessToken(secret, raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}
	if !tok.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("missing sub claim: %w", err)
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid sub claim: %w", err)
	}

	return userID, nil
}
