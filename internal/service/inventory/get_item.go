package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/domain"
)

// GetItem returns a single item by ID within the owner's scope.
func (s *Service) GetItem(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.InventoryItem, error) {
	item, err := s.items.FindOne(ctx, itemID, scopeFor(ownerID))
	if err != nil {
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}
