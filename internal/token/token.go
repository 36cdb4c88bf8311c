// Package token issues and verifies the signed credentials shared by all
// three principal kinds.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/picksart/backend/internal/model"
)

var (
	ErrExpired     = errors.New("token has expired")
	ErrInvalid     = errors.New("invalid token")
	ErrRoleInvalid = errors.New("invalid user role")
)

// Claims carried by every issued token.
type Claims struct {
	UserID uint64 `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens with a symmetric secret
// configured at process startup.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

func (s *Service) Issue(principalID uint64, kind model.PrincipalKind) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: principalID,
		Role:   string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and extracts the (id, kind) pair.
func (s *Service) Verify(raw string) (uint64, model.PrincipalKind, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, "", ErrExpired
		}
		return 0, "", ErrInvalid
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return 0, "", ErrInvalid
	}
	kind, ok := model.ParseKind(claims.Role)
	if !ok {
		return 0, "", ErrRoleInvalid
	}
	return claims.UserID, kind, nil
}
