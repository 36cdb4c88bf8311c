package service

import (
	"context"
	"testing"
	"time"

	"github.com/picksart/backend/internal/model"
	"github.com/picksart/backend/internal/repository"
	"github.com/picksart/backend/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakePrincipalRepo struct {
	customers map[string]*model.Customer
	artists   map[string]*model.Artist
	galleries map[string]*model.Gallery
}

func newFakePrincipalRepo() *fakePrincipalRepo {
	return &fakePrincipalRepo{
		customers: map[string]*model.Customer{},
		artists:   map[string]*model.Artist{},
		galleries: map[string]*model.Gallery{},
	}
}

func (f *fakePrincipalRepo) Resolve(_ context.Context, kind model.PrincipalKind, id uint64) (*model.Principal, error) {
	switch kind {
	case model.KindCustomer:
		for _, c := range f.customers {
			if c.ID == id {
				return c.Principal(), nil
			}
		}
	case model.KindArtist:
		for _, a := range f.artists {
			if a.ID == id {
				return a.Principal(), nil
			}
		}
	case model.KindGallery:
		for _, g := range f.galleries {
			if g.ID == id {
				return g.Principal(), nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePrincipalRepo) FindByEmail(_ context.Context, kind model.PrincipalKind, email string) (*repository.Credential, error) {
	switch kind {
	case model.KindCustomer:
		if c, ok := f.customers[email]; ok {
			return &repository.Credential{Principal: *c.Principal(), PasswordHash: c.PasswordHash}, nil
		}
	case model.KindArtist:
		if a, ok := f.artists[email]; ok {
			return &repository.Credential{Principal: *a.Principal(), PasswordHash: a.PasswordHash}, nil
		}
	case model.KindGallery:
		if g, ok := f.galleries[email]; ok {
			return &repository.Credential{Principal: *g.Principal(), PasswordHash: g.PasswordHash}, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePrincipalRepo) EmailTaken(_ context.Context, email string) (bool, error) {
	_, c := f.customers[email]
	_, a := f.artists[email]
	_, g := f.galleries[email]
	return c || a || g, nil
}

func (f *fakePrincipalRepo) CreateCustomer(_ context.Context, c *model.Customer) error {
	c.ID = uint64(len(f.customers) + 1)
	f.customers[c.Email] = c
	return nil
}

func (f *fakePrincipalRepo) CreateArtist(_ context.Context, a *model.Artist) error {
	a.ID = uint64(len(f.artists) + 1)
	f.artists[a.Email] = a
	return nil
}

func (f *fakePrincipalRepo) CreateGallery(_ context.Context, g *model.Gallery) error {
	g.ID = uint64(len(f.galleries) + 1)
	f.galleries[g.Email] = g
	return nil
}

func newAuthService(repo repository.PrincipalRepository) AuthService {
	return NewAuthService(repo, token.NewService("test-secret", time.Hour))
}

func TestSignupAndLoginRoundTrip(t *testing.T) {
	repo := newFakePrincipalRepo()
	svc := newAuthService(repo)

	p, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "secret-pw",
		Role:     "customer",
	})
	require.NoError(t, err)
	assert.Equal(t, model.KindCustomer, p.Kind)
	// the stored secret must be a hash, never the raw password
	stored := repo.customers["ann@example.com"].PasswordHash
	assert.NotEqual(t, "secret-pw", stored)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("secret-pw")))

	raw, logged, err := svc.Login(context.Background(), "ann@example.com", "secret-pw", "customer")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, p.ID, logged.ID)
	assert.Equal(t, model.KindCustomer, logged.Kind)
}

func TestSignupRejectsDuplicateEmailAcrossKinds(t *testing.T) {
	repo := newFakePrincipalRepo()
	svc := newAuthService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{
		Name: "Maya", Email: "maya@example.com", Password: "pw", Role: "artist",
	})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), SignupInput{
		Name: "Other Maya", Email: "maya@example.com", Password: "pw", Role: "customer",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	svc := newAuthService(newFakePrincipalRepo())

	_, err := svc.Signup(context.Background(), SignupInput{
		Name: "Ann", Email: "ann@example.com", Password: "pw", Role: "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLoginFailures(t *testing.T) {
	repo := newFakePrincipalRepo()
	svc := newAuthService(repo)
	_, err := svc.Signup(context.Background(), SignupInput{
		Name: "Ann", Email: "ann@example.com", Password: "secret-pw", Role: "customer",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		role     string
		wantErr  error
	}{
		{"wrong password", "ann@example.com", "nope", "customer", ErrInvalidCredentials},
		{"unknown email", "bob@example.com", "secret-pw", "customer", ErrInvalidCredentials},
		{"wrong kind table", "ann@example.com", "secret-pw", "artist", ErrInvalidCredentials},
		{"bad role", "ann@example.com", "secret-pw", "root", ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.email, tt.password, tt.role)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
