package auth

import "github.com/avoronin/stockpile-backend/internal/domain"

// AuthResult is returned by the Register and Login operations.
type AuthResult struct {
	Token string
	User  *domain.User
}
