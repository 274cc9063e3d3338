package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/domain"
)

// maxSKUAttempts bounds the regeneration loop when an auto-generated SKU
// collides. A caller-provided SKU is never regenerated.
const maxSKUAttempts = 3

// CreateItem creates a new item owned by ownerID. When the input carries no
// SKU, one is generated from the category; a collision with a supplied SKU
// returns ErrAlreadyExists.
func (s *Service) CreateItem(ctx context.Context, ownerID uuid.UUID, input CreateItemInput) (*domain.InventoryItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	threshold := domain.DefaultLowStockLevel
	if input.LowStockThreshold != nil {
		threshold = *input.LowStockThreshold
	}

	category := domain.Category(input.Category)
	sku := strings.ToUpper(strings.TrimSpace(input.SKU))
	autoGenerated := sku == ""

	attempts := 1
	if autoGenerated {
		sku = generateSKU(category)
		attempts = maxSKUAttempts
	}

	var (
		created *domain.InventoryItem
		err     error
	)
	for attempt := 0; attempt < attempts; attempt++ {
		created, err = s.items.Create(ctx, &domain.InventoryItem{
			Name:              input.Name,
			Description:       input.Description,
			Category:          category,
			SKU:               sku,
			Quantity:          input.Quantity,
			Price:             input.Price,
			LowStockThreshold: threshold,
			OwnerID:           ownerID,
		})
		if err == nil {
			break
		}
		if !autoGenerated || !errors.Is(err, domain.ErrAlreadyExists) {
			break
		}
		sku = generateSKU(category)
	}
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("sku %q is taken: %w", sku, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create inventory item: %w", err)
	}

	s.log.InfoContext(ctx, "inventory item created",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", created.ID.String()),
		slog.String("sku", created.SKU),
	)

	return created, nil
}

// generateSKU builds a SKU of the form PRE-123456-042: the first three
// letters of the category, the low six digits of the current millisecond
// clock, and a random three-digit suffix.
func generateSKU(category domain.Category) string {
	prefix := strings.ToUpper(category.String())
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%06d-%03d",
		prefix,
		time.Now().UnixMilli()%1_000_000,
		rand.IntN(1000),
	)
}
