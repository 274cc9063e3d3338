package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avoronin/stockpile-backend/internal/domain"
)

// Login authenticates a user with email + password and issues an access
// token. An unknown email and a wrong password both return ErrUnauthorized so
// the response does not reveal which one it was.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	creds, err := s.users.GetByEmailWithPassword(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !s.hasher.Compare(input.Password, creds.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(creds.ID, creds.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", creds.ID.String()))

	return &AuthResult{Token: token, User: &creds.User}, nil
}
