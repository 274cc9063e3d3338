package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/domain"
)

// UpdateQuantity sets the absolute quantity of one of the owner's items.
func (s *Service) UpdateQuantity(ctx context.Context, ownerID, itemID uuid.UUID, quantity int) (*domain.InventoryItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative: %w", domain.ErrInvalidArgument)
	}

	if _, err := s.items.FindOne(ctx, itemID, scopeFor(ownerID)); err != nil {
		return nil, fmt.Errorf("update quantity: %w", err)
	}

	item, err := s.items.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("update quantity: %w", err)
	}

	return item, nil
}
