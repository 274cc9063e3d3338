package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/avoronin/stockpile-backend/internal/domain"
)

// Register creates a new user account and issues an access token.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Fast path check. The unique constraint on email still guards the race.
	taken, err := s.users.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Register check email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("auth.Register: email taken: %w", domain.ErrAlreadyExists)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	creds := &domain.Credentials{
		User: domain.User{
			Name:  input.Name,
			Email: input.Email,
			Role:  domain.RoleUser,
		},
		PasswordHash: hash,
	}

	user, err := s.users.Create(ctx, creds)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: email taken: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{Token: token, User: user}, nil
}
