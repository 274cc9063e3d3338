package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Stats aggregates the owner's inventory in a single pass over all items.
// TotalValue is the sum of price x quantity, formatted to two decimals.
func (s *Service) Stats(ctx context.Context, ownerID uuid.UUID) (*Statistics, error) {
	items, err := s.items.All(ctx, scopeFor(ownerID), "-createdAt")
	if err != nil {
		return nil, fmt.Errorf("inventory stats: %w", err)
	}

	stats := &Statistics{TotalItems: len(items)}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
		if item.Quantity == 0 {
			stats.OutOfStockCount++
		}
		if item.IsLowStock() {
			stats.LowStockCount++
		}
	}
	stats.TotalValue = fmt.Sprintf("%.2f", total)

	return stats, nil
}
