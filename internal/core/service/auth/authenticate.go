package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// Authenticate verifies credentials and issues a fresh session token.
// Unknown email and wrong password are indistinguishable to the caller,
// so accounts cannot be enumerated through this endpoint.
func (a *authService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	session := domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(a.cfg.SessionTTL),
	}
	if err := a.sessions.Create(ctx, session); err != nil {
		return "", err
	}

	return session.Token, nil
}
