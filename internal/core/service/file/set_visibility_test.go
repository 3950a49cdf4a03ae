package file_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/queue"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/repository"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/storage"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/service/file"
)

func TestFileService_SetVisibility_Publish(t *testing.T) {
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
	published := record
	published.IsPublic = true

	mockFileRepo.On("FindByIDAndOwner", ctx, record.ID, ownerID).Return(&record, nil)
	mockFileRepo.On("SetVisibility", ctx, record.ID, true).Return(&published, nil)

	// Act
	updated, err := service.SetVisibility(ctx, record.ID, ownerID, true)

	// Assert
	assert.NoError(t, err)
	assert.True(t, updated.IsPublic)
	mockFileRepo.AssertExpectations(t)
}

func TestFileService_SetVisibility_NotOwner(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFileRepo := repository.NewMockFileRepository()
	service := file.NewFileService(mockFileRepo, repository.NewMockJobRepository(), storage.NewMockStorage(), queue.NewMockQueue(), slog.Default())

	fileID := uuid.New()
	strangerID := uuid.New()
	mockFileRepo.On("FindByIDAndOwner", ctx, fileID, strangerID).Return(&domain.FileRecord{}, domain.ErrNotFound)

	// Act
	updated, err := service.SetVisibility(ctx, fileID, strangerID, true)

	// Assert
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, updated)
	mockFileRepo.AssertNotCalled(t, "SetVisibility", mock.Anything, mock.Anything, mock.Anything)
	mockFileRepo.AssertExpectations(t)
}

func TestFileService_ListFiles_Passthrough(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFileRepo := repository.NewMockFileRepository()
	service := file.NewFileService(mockFileRepo, repository.NewMockJobRepository(), storage.NewMockStorage(), queue.NewMockQueue(), slog.Default())

	ownerID := uuid.New()
	records := []domain.FileRecord{
		{ID: uuid.New(), OwnerID: ownerID, Name: "a.txt", Kind: domain.FileKindFile},
		{ID: uuid.New(), OwnerID: ownerID, Name: "b.txt", Kind: domain.FileKindFile},
	}
	mockFileRepo.On("ListByOwnerAndParent", ctx, ownerID, domain.RootFolderID, 2).Return(records, nil)

	// Act
	result, err := service.ListFiles(ctx, ownerID, domain.RootFolderID, 2)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, records, result)
	mockFileRepo.AssertExpectations(t)
}
