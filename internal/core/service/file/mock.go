package file

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// MockFileService is a mock implementation of port.FileService
type MockFileService struct {
	mock.Mock
}

func NewMockFileService() *MockFileService {
	return &MockFileService{}
}

func (m *MockFileService) Upload(ctx context.Context, ownerID uuid.UUID, input port.UploadInput) (*domain.FileRecord, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileService) GetFile(ctx context.Context, id, requesterID uuid.UUID) (*domain.FileRecord, error) {
	args := m.Called(ctx, id, requesterID)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileService) ListFiles(ctx context.Context, ownerID, parentID uuid.UUID, page int) ([]domain.FileRecord, error) {
	args := m.Called(ctx, ownerID, parentID, page)
	return args.Get(0).([]domain.FileRecord), args.Error(1)
}

func (m *MockFileService) SetVisibility(ctx context.Context, id, ownerID uuid.UUID, isPublic bool) (*domain.FileRecord, error) {
	args := m.Called(ctx, id, ownerID, isPublic)
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *MockFileService) GetContent(ctx context.Context, id, requesterID uuid.UUID, size int) (*port.Content, error) {
	args := m.Called(ctx, id, requesterID, size)
	return args.Get(0).(*port.Content), args.Error(1)
}
