package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	authcodec "github.com/avoronin/stockpile-backend/internal/auth"
	"github.com/avoronin/stockpile-backend/internal/domain"
)

// Authenticate verifies an access token and returns its claims. Every
// verification failure collapses into ErrUnauthorized.
func (s *Service) Authenticate(token string) (*authcodec.Claims, error) {
	claims, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

// CurrentUser loads the profile of an authenticated user. A token whose
// subject no longer exists yields ErrUnauthorized, not ErrNotFound.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.CurrentUser get user: %w", err)
	}
	return user, nil
}
