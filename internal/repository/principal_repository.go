package repository

import (
	"context"
	"errors"

	"github.com/picksart/backend/internal/model"
	"gorm.io/gorm"
)

var ErrUnknownKind = errors.New("unknown principal kind")

// Credential is a principal together with its stored password hash, for
// login checks only.
type Credential struct {
	Principal    model.Principal
	PasswordHash string
}

// PrincipalRepository resolves identities against the three principal
// tables. Resolution dispatches on kind; there is no unified user table.
type PrincipalRepository interface {
	Resolve(ctx context.Context, kind model.PrincipalKind, id uint64) (*model.Principal, error)
	FindByEmail(ctx context.Context, kind model.PrincipalKind, email string) (*Credential, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	CreateCustomer(ctx context.Context, c *model.Customer) error
	CreateArtist(ctx context.Context, a *model.Artist) error
	CreateGallery(ctx context.Context, g *model.Gallery) error
}

type principalRepository struct {
	db      *gorm.DB
	byID    map[model.PrincipalKind]func(ctx context.Context, id uint64) (*model.Principal, error)
	byEmail map[model.PrincipalKind]func(ctx context.Context, email string) (*Credential, error)
}

func NewPrincipalRepository(db *gorm.DB) PrincipalRepository {
	r := &principalRepository{db: db}
	r.byID = map[model.PrincipalKind]func(ctx context.Context, id uint64) (*model.Principal, error){
		model.KindCustomer: r.customerByID,
		model.KindArtist:   r.artistByID,
		model.KindGallery:  r.galleryByID,
	}
	r.byEmail = map[model.PrincipalKind]func(ctx context.Context, email string) (*Credential, error){
		model.KindCustomer: r.customerByEmail,
		model.KindArtist:   r.artistByEmail,
		model.KindGallery:  r.galleryByEmail,
	}
	return r
}

func (r *principalRepository) Resolve(ctx context.Context, kind model.PrincipalKind, id uint64) (*model.Principal, error) {
	fn, ok := r.byID[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	return fn(ctx, id)
}

func (r *principalRepository) FindByEmail(ctx context.Context, kind model.PrincipalKind, email string) (*Credential, error) {
	fn, ok := r.byEmail[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	return fn(ctx, email)
}

// EmailTaken reports whether the email exists in any of the three tables.
// Uniqueness is otherwise per table, so this is a signup-time courtesy
// check, the same one the login role picker relies on.
func (r *principalRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	for _, table := range []string{"customers", "artists", "galleries"} {
		var n int64
		if err := r.db.WithContext(ctx).Table(table).Where("email = ?", email).Count(&n).Error; err != nil {
			return false, err
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (r *principalRepository) CreateCustomer(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *principalRepository) CreateArtist(ctx context.Context, a *model.Artist) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *principalRepository) CreateGallery(ctx context.Context, g *model.Gallery) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *principalRepository) customerByID(ctx context.Context, id uint64) (*model.Principal, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return c.Principal(), nil
}

func (r *principalRepository) artistByID(ctx context.Context, id uint64) (*model.Principal, error) {
	var a model.Artist
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return a.Principal(), nil
}

func (r *principalRepository) galleryByID(ctx context.Context, id uint64) (*model.Principal, error) {
	var g model.Gallery
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return g.Principal(), nil
}

func (r *principalRepository) customerByEmail(ctx context.Context, email string) (*Credential, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &Credential{Principal: *c.Principal(), PasswordHash: c.PasswordHash}, nil
}

func (r *principalRepository) artistByEmail(ctx context.Context, email string) (*Credential, error) {
	var a model.Artist
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &Credential{Principal: *a.Principal(), PasswordHash: a.PasswordHash}, nil
}

func (r *principalRepository) galleryByEmail(ctx context.Context, email string) (*Credential, error) {
	var g model.Gallery
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&g).Error; err != nil {
		return nil, err
	}
	return &Credential{Principal: *g.Principal(), PasswordHash: g.PasswordHash}, nil
}
