package file_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/queue"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/repository"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/storage"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/service/file"
)

func TestFileService_GetFile_OwnerSeesPrivate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFileRepo := repository.NewMockFileRepository()
	service := file.NewFileService(mockFileRepo, repository.NewMockJobRepository(), storage.NewMockStorage(), queue.NewMockQueue(), slog.Default())

	ownerID := uuid.New()
	record := domain.FileRecord{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     "myText.txt",
		Kind:     domain.FileKindFile,
		IsPublic: false,
	}
	mockFileRepo.On("FindByID", ctx, record.ID).Return(&record, nil)

	// Act
	found, err := service.GetFile(ctx, record.ID, ownerID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, &record, found)
	mockFileRepo.AssertExpectations(t)
}

func TestFileService_GetFile_PrivateHiddenFromOthers(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFileRepo := repository.NewMockFileRepository()
	service := file.NewFileService(mockFileRepo, repository.NewMockJobRepository(), storage.NewMockStorage(), queue.NewMockQueue(), slog.Default())

	record := domain.FileRecord{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "secret.txt",
		Kind:     domain.FileKindFile,
		IsPublic: false,
	}
	mockFileRepo.On("FindByID", ctx, record.ID).Return(&record, nil)

	// Act
	found, err := service.GetFile(ctx, record.ID, uuid.New())

	// Assert
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, found)
	mockFileRepo.AssertExpectations(t)
}

func TestFileService_GetFile_PublicVisibleToAnyone(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFileRepo := repository.NewMockFileRepository()
	service := file.NewFileService(mockFileRepo, repository.NewMockJobRepository(), storage.NewMockStorage(), queue.NewMockQueue(), slog.Default())

	record := domain.FileRecord{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "shared.txt",
		Kind:     domain.FileKindFile,
		IsPublic: true,
	}
	mockFileRepo.On("FindByID", ctx, record.ID).Return(&record, nil)

	// Act
	found, err := service.GetFile(ctx, record.ID, uuid.Nil)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, &record, found)
	mockFileRepo.AssertExpectations(t)
}

func TestFileService_GetFile_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFileRepo := repository.NewMockFileRepository()
	service := file.NewFileService(mockFileRepo, repository.NewMockJobRepository(), storage.NewMockStorage(), queue.NewMockQueue(), slog.Default())

	fileID := uuid.New()
	mockFileRepo.On("FindByID", ctx, fileID).Return(&domain.FileRecord{}, domain.ErrNotFound)

	// Act
	found, err := service.GetFile(ctx, fileID, uuid.New())

	// Assert
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, found)
	mockFileRepo.AssertExpectations(t)
}
