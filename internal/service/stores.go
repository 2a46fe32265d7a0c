package service

import (
	"context"
	"time"

	"github.com/sefazor/geradores-backend/internal/models"
)

// UserStore is implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]models.User, error)
}

// GeneratorStore is implemented by repository.GeneratorRepository.
type GeneratorStore interface {
	Create(ctx context.Context, generator *models.Generator) error
	GetByID(ctx context.Context, id uint) (*models.Generator, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Generator, error)
	List(ctx context.Context, offset, limit int) ([]models.Generator, error)
	Update(ctx context.Context, generator *models.Generator, columns []string) error
	Delete(ctx context.Context, id uint) (bool, error)
}

// EventStore is implemented by repository.EventRepository.
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context, offset, limit int) ([]models.Event, error)
	ListByGenerator(ctx context.Context, generatorID uint, offset, limit int) ([]models.Event, error)
	CountByGenerator(ctx context.Context, generatorID uint) (int64, error)
	Update(ctx context.Context, event *models.Event, columns []string) error
	Delete(ctx context.Context, id uint) (bool, error)
}

// PasswordHasher is implemented by bcrypt.Hasher.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) (bool, error)
}

// TokenIssuer is implemented by jwt.TokenService.
type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
	Validate(token string) (string, error)
	TTL() time.Duration
}
