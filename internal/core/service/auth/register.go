package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// Register creates a new account with a bcrypt password hash
func (a *authService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	userID := uuid.New()
	if err := a.users.Create(ctx, userID, email, string(hash)); err != nil {
		return nil, err
	}

	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
