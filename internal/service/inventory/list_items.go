package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/adapter/postgres/store"
	"github.com/avoronin/stockpile-backend/internal/domain"
)

// ListItems returns a paginated list of the owner's items. A non-empty search
// term wins over a category filter.
func (s *Service) ListItems(ctx context.Context, ownerID uuid.UUID, input ListItemsInput) (*store.List[domain.InventoryItem], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	scope := scopeFor(ownerID)
	opts := store.ListOptions{
		Page:  input.Page,
		Limit: input.Limit,
		Sort:  input.Sort,
	}

	term := strings.TrimSpace(input.Search)

	var (
		list *store.List[domain.InventoryItem]
		err  error
	)
	switch {
	case term != "":
		list, err = s.items.Search(ctx, term, scope, opts)
	case input.Category != "":
		list, err = s.items.FindByCategory(ctx, domain.Category(input.Category), scope, opts)
	default:
		list, err = s.items.FindAll(ctx, scope, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}

	return list, nil
}
