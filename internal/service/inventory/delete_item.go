package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/domain"
)

// DeleteItem removes one of the owner's items and returns the deleted record.
func (s *Service) DeleteItem(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.InventoryItem, error) {
	// Scoped lookup first: deleting another owner's item must report NotFound
	// rather than silently removing it.
	if _, err := s.items.FindOne(ctx, itemID, scopeFor(ownerID)); err != nil {
		return nil, fmt.Errorf("delete inventory item: %w", err)
	}

	deleted, err := s.items.DeleteByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("delete inventory item: %w", err)
	}

	s.log.InfoContext(ctx, "inventory item deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", itemID.String()),
	)

	return deleted, nil
}
