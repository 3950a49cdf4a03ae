package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"

	"github.com/google/uuid"
)

type sqlSessionRepository struct {
	db SQLQuerier
}

// NewSqlSessionRepository creates sqlSessionRepository that implements port.SessionRepository
func NewSqlSessionRepository(db SQLQuerier) port.SessionRepository {
	return &sqlSessionRepository{
		db: db,
	}
}

// Create stores a token-to-user mapping with its expiry
func (s *sqlSessionRepository) Create(ctx context.Context, session domain.Session) error {
	query := `INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, session.Token, session.UserID, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("error inserting session: %w", err)
	}
	return nil
}

// FindByToken resolves a token. Expired rows are treated as absent even
// before the purge loop removes them.
func (s *sqlSessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	query := `SELECT token, user_id, expires_at
              FROM sessions
              WHERE token = $1 AND expires_at > now()`

	var session domain.Session
	var userID uuid.UUID
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&session.Token,
		&userID,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	session.UserID = userID

	return &session, nil
}

// Delete revokes a token. Deleting an absent token is still a success: the
// externally visible contract is only that the token no longer works.
func (s *sqlSessionRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`

	if _, err := s.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// DeleteExpired removes rows past their TTL and reports how many were purged
func (s *sqlSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at <= $1`

	result, err := s.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error checking rows affected: %w", err)
	}
	return purged, nil
}
