package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

type sqlJobRepository struct {
	db SQLQuerier
}

// NewSqlJobRepository creates sqlJobRepository that implements port.JobRepository
func NewSqlJobRepository(db SQLQuerier) port.JobRepository {
	return &sqlJobRepository{
		db: db,
	}
}

const jobColumns = `id, file_id, owner_id, state, attempts, created_at, updated_at`

// Create inserts a queued job row
func (s *sqlJobRepository) Create(ctx context.Context, job domain.Job) error {
	query := `INSERT INTO jobs (id, file_id, owner_id, state, attempts)
              VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query, job.ID, job.FileID, job.OwnerID, job.State, job.Attempts)
	if err != nil {
		return fmt.Errorf("error inserting job: %w", err)
	}
	return nil
}

// Claim marks a job running and bumps its attempt counter in one statement,
// so a redelivered job always reflects its true delivery count.
func (s *sqlJobRepository) Claim(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `UPDATE jobs
              SET state = $1, attempts = attempts + 1, updated_at = now()
              WHERE id = $2
              RETURNING ` + jobColumns

	return s.scanJob(s.db.QueryRowContext(ctx, query, domain.JobStateRunning, id))
}

// SetState moves a job to the given state
func (s *sqlJobRepository) SetState(ctx context.Context, id uuid.UUID, state domain.JobState) error {
	query := `UPDATE jobs
              SET state = $1, updated_at = now()
              WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, state, id)
	if err != nil {
		return fmt.Errorf("error updating job state: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// FindByID finds a job by id
func (s *sqlJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	return s.scanJob(s.db.QueryRowContext(ctx, query, id))
}

func (s *sqlJobRepository) scanJob(row *sql.Row) (*domain.Job, error) {
	var j dbJob
	err := row.Scan(
		&j.ID,
		&j.FileID,
		&j.OwnerID,
		&j.State,
		&j.Attempts,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return j.ToDomain(), nil
}

// dbJob represents a job row in DB
type dbJob struct {
	ID        uuid.UUID `db:"id"`
	FileID    uuid.UUID `db:"file_id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	State     string    `db:"state"`
	Attempts  int       `db:"attempts"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToDomain converts to domain.Job
func (j *dbJob) ToDomain() *domain.Job {
	return &domain.Job{
		ID:        j.ID,
		FileID:    j.FileID,
		OwnerID:   j.OwnerID,
		State:     domain.JobState(j.State),
		Attempts:  j.Attempts,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}
