// Package auth verifies the bearer tokens issued by the platform's account
// service and can mint equivalent tokens for local development.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"startlabx/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL matches the account service's token lifetime.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNoSecret     = errors.New("jwt secret is not configured")
)

type claims struct {
	jwt.RegisteredClaims
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWTVerifier checks HS256 tokens carrying {id, email, role} claims.
type JWTVerifier struct {
	secret []byte
	now    func() time.Time
}

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNoSecret
	}
	return &JWTVerifier{secret: []byte(secret), now: time.Now}, nil
}

// Verify parses a raw token (with or without the "Bearer " prefix) into the
// caller identity.
func (v *JWTVerifier) Verify(raw string) (entities.Identity, error) {
	token := strings.TrimSpace(raw)
	if fields := strings.Fields(token); len(fields) > 0 && strings.EqualFold(fields[0], "bearer") {
		token = strings.TrimSpace(token[len(fields[0]):])
	}
	if token == "" {
		return entities.Identity{}, ErrMissingToken
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if strings.TrimSpace(parsed.ID) == "" {
		return entities.Identity{}, fmt.Errorf("%w: id claim is required", ErrInvalidToken)
	}
	return entities.Identity{UserID: parsed.ID, Email: parsed.Email, Role: parsed.Role}, nil
}

// Issue signs a token for id. It exists for local development and tests.
func (v *JWTVerifier) Issue(id entities.Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := v.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		ID:    id.UserID,
		Email: id.Email,
		Role:  id.Role,
	})
	return token.SignedString(v.secret)
}
