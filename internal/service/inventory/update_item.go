package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	invrepo "github.com/avoronin/stockpile-backend/internal/adapter/postgres/inventory"
	"github.com/avoronin/stockpile-backend/internal/domain"
)

// UpdateItem applies a partial update to one of the owner's items. Changing
// the SKU to one that another item already uses returns ErrAlreadyExists.
func (s *Service) UpdateItem(ctx context.Context, ownerID, itemID uuid.UUID, input UpdateItemInput) (*domain.InventoryItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.items.FindOne(ctx, itemID, scopeFor(ownerID))
	if err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}

	if input.SKU != nil {
		sku := strings.ToUpper(strings.TrimSpace(*input.SKU))
		if sku != current.SKU {
			taken, err := s.items.SKUExists(ctx, sku)
			if err != nil {
				return nil, fmt.Errorf("update inventory item check sku: %w", err)
			}
			if taken {
				return nil, fmt.Errorf("sku %q is taken: %w", sku, domain.ErrAlreadyExists)
			}
		}
	}

	patch := invrepo.Patch{
		Name:              input.Name,
		Description:       input.Description,
		SKU:               input.SKU,
		Quantity:          input.Quantity,
		Price:             input.Price,
		LowStockThreshold: input.LowStockThreshold,
	}
	if input.Category != nil {
		category := domain.Category(*input.Category)
		patch.Category = &category
	}

	updated, err := s.items.UpdateByID(ctx, itemID, patch)
	if err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}

	return updated, nil
}
