// Package user implements user account persistence.
package user

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/adapter/postgres"
	"github.com/avoronin/stockpile-backend/internal/adapter/postgres/store"
	"github.com/avoronin/stockpile-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "name", "email", "password_hash", "role", "created_at", "updated_at",
}

// Repo provides user persistence. Reads return domain.User without the
// password hash; only GetByEmailWithPassword exposes domain.Credentials, and
// only the auth service calls it.
type Repo struct {
	store *store.Store[domain.Credentials]
}

// New creates the user repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		store: store.MustNew(q, store.Config[domain.Credentials]{
			Table:   table,
			Columns: columns,
			Sortable: map[string]string{
				"name":      "name",
				"email":     "email",
				"createdAt": "created_at",
			},
			Rules: []store.Rule{
				{Column: "name", Required: true, MaxLen: domain.MaxNameLen},
				{Column: "email", Required: true},
				{Column: "password_hash", Field: "password", Required: true},
				{Column: "role", Required: true, Enum: roleNames()},
			},
			Values: func(c *domain.Credentials) map[string]any {
				return map[string]any{
					"name":          strings.TrimSpace(c.Name),
					"email":         normalizeEmail(c.Email),
					"password_hash": c.PasswordHash,
					"role":          c.Role,
				}
			},
		}),
	}
}

// Create inserts a new user and returns it without the password hash. A
// duplicate email surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, creds *domain.Credentials) (*domain.User, error) {
	created, err := r.store.Create(ctx, creds)
	if err != nil {
		return nil, err
	}
	return &created.User, nil
}

// GetByID returns the user with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	creds, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &creds.User, nil
}

// GetByEmail returns the user with the given email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	creds, err := r.getByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &creds.User, nil
}

// GetByEmailWithPassword returns the user together with its password hash.
func (r *Repo) GetByEmailWithPassword(ctx context.Context, email string) (*domain.Credentials, error) {
	return r.getByEmail(ctx, email)
}

// EmailExists reports whether a user with the email is already registered.
func (r *Repo) EmailExists(ctx context.Context, email string) (bool, error) {
	n, err := r.store.Count(ctx, squirrel.Eq{"email": normalizeEmail(email)})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repo) getByEmail(ctx context.Context, email string) (*domain.Credentials, error) {
	return r.store.FindOne(ctx, squirrel.Eq{"email": normalizeEmail(email)})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func roleNames() []string {
	return []string{domain.RoleUser.String(), domain.RoleAdmin.String()}
}
