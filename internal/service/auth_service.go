package service

import (
	"context"
	"errors"
	"strings"

	"github.com/picksart/backend/internal/model"
	"github.com/picksart/backend/internal/repository"
	"github.com/picksart/backend/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// SignupInput carries the shared principal fields plus the per-kind
// extras; extras for other kinds are ignored.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string

	Bio            string // artist
	Specialization string // artist
	Description    string // gallery
	Location       string // gallery
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*model.Principal, error)
	Login(ctx context.Context, email, password, role string) (string, *model.Principal, error)
}

type authService struct {
	principals repository.PrincipalRepository
	tokens     *token.Service
}

func NewAuthService(principals repository.PrincipalRepository, tokens *token.Service) AuthService {
	return &authService{principals: principals, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.Principal, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, errors.New("name, email and password are required")
	}
	kind, ok := model.ParseKind(strings.ToLower(in.Role))
	if !ok {
		return nil, ErrInvalidRole
	}

	taken, err := s.principals.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	switch kind {
	case model.KindCustomer:
		c := &model.Customer{Name: name, Email: email, PasswordHash: string(hash)}
		if err := s.principals.CreateCustomer(ctx, c); err != nil {
			return nil, err
		}
		return c.Principal(), nil
	case model.KindArtist:
		a := &model.Artist{
			Name:           name,
			Email:          email,
			PasswordHash:   string(hash),
			Bio:            in.Bio,
			Specialization: in.Specialization,
		}
		if err := s.principals.CreateArtist(ctx, a); err != nil {
			return nil, err
		}
		return a.Principal(), nil
	default:
		g := &model.Gallery{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Description:  in.Description,
			Location:     in.Location,
		}
		if err := s.principals.CreateGallery(ctx, g); err != nil {
			return nil, err
		}
		return g.Principal(), nil
	}
}

func (s *authService) Login(ctx context.Context, email, password, role string) (string, *model.Principal, error) {
	kind, ok := model.ParseKind(strings.ToLower(strings.TrimSpace(role)))
	if !ok {
		return "", nil, ErrInvalidRole
	}
	cred, err := s.principals.FindByEmail(ctx, kind, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	raw, err := s.tokens.Issue(cred.Principal.ID, kind)
	if err != nil {
		return "", nil, err
	}
	p := cred.Principal
	return raw, &p, nil
}
