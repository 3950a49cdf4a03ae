package auth

import (
	"github.com/bcart01v/atlas-atlas-files-manager/internal/config"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

type authService struct {
	users    port.UserRepository
	sessions port.SessionRepository
	cfg      config.AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(users port.UserRepository, sessions port.SessionRepository, cfg config.AuthConfig) port.AuthService {
	return &authService{users: users, sessions: sessions, cfg: cfg}
}
