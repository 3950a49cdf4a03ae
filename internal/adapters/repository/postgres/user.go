package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

type sqlUserRepository struct {
	db SQLQuerier
}

// NewSqlUserRepository creates sqlUserRepository that implements port.UserRepository
func NewSqlUserRepository(db SQLQuerier) port.UserRepository {
	return &sqlUserRepository{
		db: db,
	}
}

// Create inserts a new user. A duplicate email maps to domain.ErrAlreadyExists.
func (s *sqlUserRepository) Create(ctx context.Context, id uuid.UUID, email, passwordHash string) error {
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, LOWER($2), $3)`

	_, err := s.db.ExecContext(ctx, query, id, email, passwordHash)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return fmt.Errorf("user %s: %w", email, domain.ErrAlreadyExists)
			}
		}
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

// FindByEmail finds a user by email
func (s *sqlUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, created_at
              FROM users
              WHERE email = LOWER($1)`

	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// FindByID finds a user by id
func (s *sqlUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, email, password_hash, created_at
              FROM users
              WHERE id = $1`

	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

// Count counts registered users
func (s *sqlUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return n, nil
}

func (s *sqlUserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var dbUser dbUser
	err := row.Scan(
		&dbUser.ID,
		&dbUser.Email,
		&dbUser.PasswordHash,
		&dbUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dbUser.ToDomain(), nil
}

// dbUser represents a user row in DB
type dbUser struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// ToDomain converts to domain.User
func (u *dbUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
