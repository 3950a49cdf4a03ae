package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
)

// ValidateSession resolves a token to its user id
func (a *authService) ValidateSession(ctx context.Context, token string) (uuid.UUID, error) {
	session, err := a.sessions.FindByToken(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	return session.UserID, nil
}

// Revoke deletes the session. Revocation is synchronous with the delete, so a
// revoked token fails on the very next validation call.
func (a *authService) Revoke(ctx context.Context, token string) error {
	return a.sessions.Delete(ctx, token)
}

// CurrentUser resolves a token to the full user record
func (a *authService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	userID, err := a.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return a.users.FindByID(ctx, userID)
}
