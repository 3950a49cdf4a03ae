package auth

import (
	"log/slog"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// HandlerV1 is the handler for v1 session routes
type HandlerV1 struct {
	authService port.AuthService
	logger      *slog.Logger
}

// NewAuthHandlerV1 creates HandlerV1
func NewAuthHandlerV1(service port.AuthService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		authService: service,
		logger:      logger,
	}
}
