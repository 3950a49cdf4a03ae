package users

import (
	"log/slog"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// HandlerV1 is the handler for v1 user routes
type HandlerV1 struct {
	authService port.AuthService
	logger      *slog.Logger
}

// NewUsersHandlerV1 creates HandlerV1
func NewUsersHandlerV1(service port.AuthService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		authService: service,
		logger:      logger,
	}
}

// V1UserResponse is the public shape of a user
type V1UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
