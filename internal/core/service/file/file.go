package file

import (
	"log/slog"
	"mime"
	"path/filepath"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

type fileService struct {
	files   port.FileRepository
	jobs    port.JobRepository
	storage port.BlobStorage
	queue   port.JobQueue
	logger  *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(files port.FileRepository, jobs port.JobRepository, storage port.BlobStorage, queue port.JobQueue, logger *slog.Logger) port.FileService {
	return &fileService{
		files:   files,
		jobs:    jobs,
		storage: storage,
		queue:   queue,
		logger:  logger,
	}
}

// mimeTypeFor resolves the served MIME type from a record name.
// mime.TypeByExtension is deterministic for the common types and falls back
// to a generic binary type rather than guessing from content.
func mimeTypeFor(name string) string {
	if mimeType := mime.TypeByExtension(filepath.Ext(name)); mimeType != "" {
		return mimeType
	}
	return "application/octet-stream"
}
