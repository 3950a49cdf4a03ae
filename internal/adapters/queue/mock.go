package queue

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// MockQueue is a mock implementation of port.JobQueue
type MockQueue struct {
	mock.Mock
}

func NewMockQueue() *MockQueue {
	return &MockQueue{}
}

func (m *MockQueue) Enqueue(ctx context.Context, msg domain.JobMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
