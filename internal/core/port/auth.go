package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// UserRepository is an interface to define user repository interactions
type UserRepository interface {
	Create(ctx context.Context, id uuid.UUID, email, passwordHash string) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// SessionRepository is an interface to define session storage interactions.
// Lookups must reject rows past their expiry even if not yet purged.
type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// AuthService is the gateway through which every request resolves its user
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ValidateSession(ctx context.Context, token string) (uuid.UUID, error)
	Revoke(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
