// Package auth implements registration, login and token verification.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/auth"
	"github.com/avoronin/stockpile-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	Create(ctx context.Context, creds *domain.Credentials) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailWithPassword(ctx context.Context, email string) (*domain.Credentials, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// tokenManager defines the access token codec interface needed by the auth service.
type tokenManager interface {
	GenerateToken(userID uuid.UUID, role string) (string, error)
	VerifyToken(token string) (*auth.Claims, error)
}

// passwordHasher defines the password hashing interface needed by the auth service.
type passwordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) bool
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenManager
	hasher passwordHasher
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenManager, hasher passwordHasher) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}
