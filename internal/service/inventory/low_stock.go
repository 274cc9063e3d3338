package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/domain"
)

// LowStockItems returns the owner's items at or below their low-stock
// threshold, ordered by quantity ascending, with the matching count.
func (s *Service) LowStockItems(ctx context.Context, ownerID uuid.UUID) ([]*domain.InventoryItem, int, error) {
	items, count, err := s.items.FindLowStock(ctx, scopeFor(ownerID), "quantity")
	if err != nil {
		return nil, 0, fmt.Errorf("list low stock items: %w", err)
	}
	return items, count, nil
}
