package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"roomhub/server/domain"
)

// Identity is the authenticated claim set attached to a connection. UserID
// is the public (encoded) form of the internal user id.
type Identity struct {
	UserID string
	Name   string
	Role   domain.Role
}

// Tokens wraps a signing secret for issuing and verifying HS256 tokens.
type Tokens struct {
	secret []byte
}

func New(secret string) *Tokens {
	return &Tokens{secret: []byte(secret)}
}

// Verify checks a token and returns the identity claims (uid, name, role).
func (t *Tokens) Verify(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}

	uid, _ := claims["uid"].(string)
	if uid == "" {
		return Identity{}, errors.New("token has no uid claim")
	}
	name, _ := claims["name"].(string)
	if name == "" {
		return Identity{}, errors.New("token has no name claim")
	}
	roleClaim, _ := claims["role"].(string)
	role, err := domain.ParseRole(roleClaim)
	if err != nil {
		return Identity{}, fmt.Errorf("token has invalid role claim: %w", err)
	}

	return Identity{UserID: uid, Name: name, Role: role}, nil
}

// Sign creates a token for the given identity with the given TTL.
func (t *Tokens) Sign(identity Identity, ttl time.Duration) (string, error) {
	if identity.UserID == "" {
		return "", errors.New("empty uid")
	}
	claims := jwt.MapClaims{
		"uid":  identity.UserID,
		"name": identity.Name,
		"role": identity.Role.String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}
