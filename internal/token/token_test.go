package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/picksart/backend/internal/model"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tests := []struct {
		name string
		id   uint64
		kind model.PrincipalKind
	}{
		{"customer", 1, model.KindCustomer},
		{"artist", 42, model.KindArtist},
		{"gallery", 7, model.KindGallery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := svc.Issue(tt.id, tt.kind)
			if err != nil {
				t.Fatalf("issue: %v", err)
			}
			id, kind, err := svc.Verify(raw)
			if err != nil {
				t.Fatalf("verify: %v", err)
			}
			if id != tt.id || kind != tt.kind {
				t.Fatalf("got (%d,%s) want (%d,%s)", id, kind, tt.id, tt.kind)
			}
		})
	}
}

func TestVerifyRejects(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	expired := func() string {
		raw, err := NewService("test-secret", -time.Hour).Issue(1, model.KindCustomer)
		if err != nil {
			t.Fatalf("issue expired: %v", err)
		}
		return raw
	}()
	foreignSecret := func() string {
		raw, err := NewService("other-secret", time.Hour).Issue(1, model.KindCustomer)
		if err != nil {
			t.Fatalf("issue foreign: %v", err)
		}
		return raw
	}()
	badRole := func() string {
		claims := &Claims{
			UserID: 1,
			Role:   "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign bad role: %v", err)
		}
		return raw
	}()

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"garbage", "not-a-token", ErrInvalid},
		{"empty", "", ErrInvalid},
		{"expired", expired, ErrExpired},
		{"wrong secret", foreignSecret, ErrInvalid},
		{"unknown role", badRole, ErrRoleInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Verify(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want %v", err, tt.wantErr)
			}
		})
	}
}
