// Package auth covers login credential hashing, token issuance and the HTTP
// middleware that scopes every request to its hospital (tenant) and role.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Roles carried in tokens.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

var (
	ErrNoSecret     = errors.New("jwt secret is not configured")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims binds an authenticated actor to its role and hospital. HospitalID is
// the tenant every downstream query is filtered by.
type Claims struct {
	Role       string `json:"role"`
	HospitalID string `json:"hospital_id"`
	jwt.RegisteredClaims
}

// Tenant returns the hospital (tenant) ID from the claims.
func (c *Claims) Tenant() (uuid.UUID, error) {
	return uuid.Parse(c.HospitalID)
}

// Actor returns the authenticated subject's ID.
func (c *Claims) Actor() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Manager signs and verifies tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed token for the given actor, role and hospital.
func (m *Manager) Issue(actorID uuid.UUID, role string, hospitalID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:       role,
		HospitalID: hospitalID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a token string and returns its claims.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
