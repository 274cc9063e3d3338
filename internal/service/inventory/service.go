// Package inventory implements the inventory item operations: listing with
// filters, CRUD, quantity adjustment, low-stock reporting and statistics.
// Every operation takes the owner's user ID explicitly; items belonging to
// other owners behave exactly like missing ones.
package inventory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	invrepo "github.com/avoronin/stockpile-backend/internal/adapter/postgres/inventory"
	"github.com/avoronin/stockpile-backend/internal/adapter/postgres/store"
	"github.com/avoronin/stockpile-backend/internal/domain"
)

type inventoryRepo interface {
	FindAll(ctx context.Context, scope invrepo.Scope, opts store.ListOptions) (*store.List[domain.InventoryItem], error)
	FindByCategory(ctx context.Context, category domain.Category, scope invrepo.Scope, opts store.ListOptions) (*store.List[domain.InventoryItem], error)
	Search(ctx context.Context, term string, scope invrepo.Scope, opts store.ListOptions) (*store.List[domain.InventoryItem], error)
	FindOne(ctx context.Context, id uuid.UUID, scope invrepo.Scope) (*domain.InventoryItem, error)
	FindLowStock(ctx context.Context, scope invrepo.Scope, sort string) ([]*domain.InventoryItem, int, error)
	All(ctx context.Context, scope invrepo.Scope, sort string) ([]*domain.InventoryItem, error)
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch invrepo.Patch) (*domain.InventoryItem, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*domain.InventoryItem, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	SKUExists(ctx context.Context, sku string) (bool, error)
}

// Service provides inventory management operations.
type Service struct {
	items inventoryRepo
	log   *slog.Logger
}

// NewService creates a new inventory service.
func NewService(log *slog.Logger, items inventoryRepo) *Service {
	return &Service{
		items: items,
		log:   log.With("service", "inventory"),
	}
}

func scopeFor(ownerID uuid.UUID) invrepo.Scope {
	return invrepo.Scope{OwnerID: ownerID}
}
