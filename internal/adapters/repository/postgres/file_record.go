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

type sqlFileRepository struct {
	db SQLQuerier
}

// NewSqlFileRepository creates sqlFileRepository that implements port.FileRepository
func NewSqlFileRepository(db SQLQuerier) port.FileRepository {
	return &sqlFileRepository{
		db: db,
	}
}

const fileColumns = `id, owner_id, name, kind, parent_id, is_public, blob_key, created_at`

// Create inserts a new file record. The parent-folder check happens in the
// service before this call and is best-effort against concurrent mutation.
func (s *sqlFileRepository) Create(ctx context.Context, record domain.FileRecord) error {
	query := `INSERT INTO files (id, owner_id, name, kind, parent_id, is_public, blob_key)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.OwnerID,
		record.Name,
		record.Kind,
		record.ParentID,
		record.IsPublic,
		record.BlobKey,
	)
	if err != nil {
		return fmt.Errorf("error inserting file record: %w", err)
	}
	return nil
}

// FindByID finds a record by id, regardless of owner or visibility
func (s *sqlFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FileRecord, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1`

	return s.scanFile(s.db.QueryRowContext(ctx, query, id))
}

// FindByIDAndOwner finds a record only if owned by the given user
func (s *sqlFileRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.FileRecord, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND owner_id = $2`

	return s.scanFile(s.db.QueryRowContext(ctx, query, id, ownerID))
}

// ListByOwnerAndParent returns one page of direct children. Offset pagination:
// stable ordering between pages, no snapshot guarantee under concurrent writes.
func (s *sqlFileRepository) ListByOwnerAndParent(ctx context.Context, ownerID, parentID uuid.UUID, page int) ([]domain.FileRecord, error) {
	if page < 0 {
		page = 0
	}

	query := `SELECT ` + fileColumns + `
              FROM files
              WHERE owner_id = $1 AND parent_id = $2
              ORDER BY created_at, id
              LIMIT $3 OFFSET $4`

	rows, err := s.db.QueryContext(ctx, query, ownerID, parentID, domain.ListPageSize, page*domain.ListPageSize)
	if err != nil {
		return nil, fmt.Errorf("error querying file records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.FileRecord, 0, domain.ListPageSize)
	for rows.Next() {
		var f dbFileRecord
		err := rows.Scan(
			&f.ID,
			&f.OwnerID,
			&f.Name,
			&f.Kind,
			&f.ParentID,
			&f.IsPublic,
			&f.BlobKey,
			&f.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning file record: %w", err)
		}
		records = append(records, *f.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file records: %w", err)
	}

	return records, nil
}

// SetVisibility updates is_public and returns the updated record. Setting the
// already-current value is a no-op success.
func (s *sqlFileRepository) SetVisibility(ctx context.Context, id uuid.UUID, isPublic bool) (*domain.FileRecord, error) {
	query := `UPDATE files
              SET is_public = $1
              WHERE id = $2
              RETURNING ` + fileColumns

	return s.scanFile(s.db.QueryRowContext(ctx, query, isPublic, id))
}

// Count counts stored records
func (s *sqlFileRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting files: %w", err)
	}
	return n, nil
}

func (s *sqlFileRepository) scanFile(row *sql.Row) (*domain.FileRecord, error) {
	var f dbFileRecord
	err := row.Scan(
		&f.ID,
		&f.OwnerID,
		&f.Name,
		&f.Kind,
		&f.ParentID,
		&f.IsPublic,
		&f.BlobKey,
		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return f.ToDomain(), nil
}

// dbFileRecord represents a file record row in DB
type dbFileRecord struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	Kind      string    `db:"kind"`
	ParentID  uuid.UUID `db:"parent_id"`
	IsPublic  bool      `db:"is_public"`
	BlobKey   string    `db:"blob_key"`
	CreatedAt time.Time `db:"created_at"`
}

// ToDomain converts to domain.FileRecord
func (f *dbFileRecord) ToDomain() *domain.FileRecord {
	return &domain.FileRecord{
		ID:        f.ID,
		OwnerID:   f.OwnerID,
		Name:      f.Name,
		Kind:      domain.FileKind(f.Kind),
		ParentID:  f.ParentID,
		IsPublic:  f.IsPublic,
		BlobKey:   f.BlobKey,
		CreatedAt: f.CreatedAt,
	}
}
