package port

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// FileRepository is an interface to define file metadata repository interactions
type FileRepository interface {
	Create(ctx context.Context, record domain.FileRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FileRecord, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.FileRecord, error)
	ListByOwnerAndParent(ctx context.Context, ownerID, parentID uuid.UUID, page int) ([]domain.FileRecord, error)
	SetVisibility(ctx context.Context, id uuid.UUID, isPublic bool) (*domain.FileRecord, error)
	Count(ctx context.Context) (int64, error)
}

// UploadInput is the client-supplied input to the upload pipeline
type UploadInput struct {
	Name     string
	Type     string
	ParentID uuid.UUID
	IsPublic bool
	Data     string
}

// Content is a readable blob payload plus the MIME type it should be served with
type Content struct {
	Reader   io.ReadCloser
	MimeType string
}

// FileService is an interface to define the upload pipeline and record operations
type FileService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, input UploadInput) (*domain.FileRecord, error)
	GetFile(ctx context.Context, id, requesterID uuid.UUID) (*domain.FileRecord, error)
	ListFiles(ctx context.Context, ownerID, parentID uuid.UUID, page int) ([]domain.FileRecord, error)
	SetVisibility(ctx context.Context, id, ownerID uuid.UUID, isPublic bool) (*domain.FileRecord, error)
	GetContent(ctx context.Context, id, requesterID uuid.UUID, size int) (*Content, error)
}
