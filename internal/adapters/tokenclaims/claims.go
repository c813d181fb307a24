// Package tokenclaims reads the identity embedded in a backend-issued JWT.
// Signatures are not verified here; the backend remains the authority and
// rejects a forged token with 401 on the next call.
package tokenclaims

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/learnhub/admin-console/internal/domain/auth"
	"github.com/learnhub/admin-console/internal/ports"
)

// ErrNoSubject is returned when the token carries no usable principal id.
var ErrNoSubject = errors.New("token has no subject")

// Claims is the payload the backend signs into admin tokens.
type Claims struct {
	jwt.RegisteredClaims

	ID       string `json:"id"`
	LegacyID string `json:"_id"`
	FullName string `json:"fullName"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (c *Claims) principalID() string {
	for _, v := range []string{c.ID, c.LegacyID, c.Subject} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// Resolver implements ports.IdentityResolver over unverified JWT claims.
type Resolver struct {
	parser *jwt.Parser
}

var _ ports.IdentityResolver = (*Resolver)(nil)

// NewResolver creates a claims resolver.
func NewResolver() *Resolver {
	return &Resolver{parser: jwt.NewParser()}
}

// IdentityFromToken extracts the identity claims from token.
func (r *Resolver) IdentityFromToken(token string) (*domainauth.Identity, error) {
	var claims Claims
	if _, _, err := r.parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("parse token claims: %w", err)
	}

	id := claims.principalID()
	if id == "" {
		return nil, ErrNoSubject
	}

	name := claims.FullName
	if name == "" {
		name = claims.Name
	}
	return &domainauth.Identity{
		ID:          id,
		DisplayName: name,
		Email:       claims.Email,
		Role:        domainauth.Role(claims.Role),
	}, nil
}
