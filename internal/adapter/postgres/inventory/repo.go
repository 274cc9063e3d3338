// Package inventory implements the inventory item repository on top of the
// generic record store.
package inventory

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/adapter/postgres"
	"github.com/avoronin/stockpile-backend/internal/adapter/postgres/store"
	"github.com/avoronin/stockpile-backend/internal/domain"
)

const table = "inventory_items"

var columns = []string{
	"id", "name", "description", "category", "sku",
	"quantity", "price", "low_stock_threshold", "owner_id",
	"created_at", "updated_at",
}

// Scope restricts every read and list operation to one owner. Taking it as a
// required argument makes an unscoped call impossible to write at the call
// site; the domain service is the only layer that constructs one.
type Scope struct {
	OwnerID uuid.UUID
}

func (s Scope) filter() squirrel.Sqlizer {
	return squirrel.Eq{"owner_id": s.OwnerID}
}

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	Name              *string
	Description       *string
	Category          *domain.Category
	SKU               *string
	Quantity          *int
	Price             *float64
	LowStockThreshold *int
}

func (p Patch) values() map[string]any {
	values := map[string]any{}
	if p.Name != nil {
		values["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		values["description"] = strings.TrimSpace(*p.Description)
	}
	if p.Category != nil {
		values["category"] = *p.Category
	}
	if p.SKU != nil {
		values["sku"] = strings.ToUpper(strings.TrimSpace(*p.SKU))
	}
	if p.Quantity != nil {
		values["quantity"] = *p.Quantity
	}
	if p.Price != nil {
		values["price"] = *p.Price
	}
	if p.LowStockThreshold != nil {
		values["low_stock_threshold"] = *p.LowStockThreshold
	}
	return values
}

// Repo provides inventory item persistence.
type Repo struct {
	store *store.Store[domain.InventoryItem]
}

// New creates the inventory repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		store: store.MustNew(q, store.Config[domain.InventoryItem]{
			Table:   table,
			Columns: columns,
			Sortable: map[string]string{
				"name":      "name",
				"sku":       "sku",
				"category":  "category",
				"quantity":  "quantity",
				"price":     "price",
				"createdAt": "created_at",
				"updatedAt": "updated_at",
			},
			Rules: []store.Rule{
				{Column: "name", Required: true, MaxLen: domain.MaxNameLen},
				{Column: "description", MaxLen: domain.MaxDescriptionLen},
				{Column: "category", Required: true, Enum: categoryNames()},
				{Column: "quantity", Required: true, Min: store.Float64(0)},
				{Column: "price", Required: true, Min: store.Float64(0)},
				{Column: "low_stock_threshold", Field: "lowStockThreshold", Min: store.Float64(0)},
			},
			Values: func(i *domain.InventoryItem) map[string]any {
				return map[string]any{
					"name":                strings.TrimSpace(i.Name),
					"description":         strings.TrimSpace(i.Description),
					"category":            i.Category,
					"sku":                 strings.ToUpper(strings.TrimSpace(i.SKU)),
					"quantity":            i.Quantity,
					"price":               i.Price,
					"low_stock_threshold": i.LowStockThreshold,
					"owner_id":            i.OwnerID,
				}
			},
		}),
	}
}

// FindAll returns one owner-scoped page of items.
func (r *Repo) FindAll(ctx context.Context, scope Scope, opts store.ListOptions) (*store.List[domain.InventoryItem], error) {
	return r.store.FindAll(ctx, scope.filter(), opts)
}

// FindByCategory intersects a category equality clause with the owner scope.
func (r *Repo) FindByCategory(ctx context.Context, category domain.Category, scope Scope, opts store.ListOptions) (*store.List[domain.InventoryItem], error) {
	filter := squirrel.And{scope.filter(), squirrel.Eq{"category": category}}
	return r.store.FindAll(ctx, filter, opts)
}

// Search matches the term case-insensitively as a substring of name, SKU or
// description, within the owner scope.
func (r *Repo) Search(ctx context.Context, term string, scope Scope, opts store.ListOptions) (*store.List[domain.InventoryItem], error) {
	pattern := "%" + escapeLike(term) + "%"
	filter := squirrel.And{
		scope.filter(),
		squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"sku": pattern},
			squirrel.ILike{"description": pattern},
		},
	}
	return r.store.FindAll(ctx, filter, opts)
}

// FindOne returns the item with the given id inside the scope, or
// domain.ErrNotFound. Another owner's item is indistinguishable from a
// missing one.
func (r *Repo) FindOne(ctx context.Context, id uuid.UUID, scope Scope) (*domain.InventoryItem, error) {
	return r.store.FindOne(ctx, squirrel.And{scope.filter(), squirrel.Eq{"id": id}})
}

// FindLowStock loads all scoped items in the requested order and keeps the
// ones at or below their own threshold. The comparison is between two
// per-record fields, so it cannot be pushed into an index; the filter runs
// client-side like the statistics pass.
func (r *Repo) FindLowStock(ctx context.Context, scope Scope, sort string) ([]*domain.InventoryItem, int, error) {
	items, err := r.store.All(ctx, scope.filter(), sort)
	if err != nil {
		return nil, 0, err
	}

	lowStock := make([]*domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.IsLowStock() {
			lowStock = append(lowStock, item)
		}
	}

	return lowStock, len(lowStock), nil
}

// All returns every scoped item in the given order, without pagination.
func (r *Repo) All(ctx context.Context, scope Scope, sort string) ([]*domain.InventoryItem, error) {
	return r.store.All(ctx, scope.filter(), sort)
}

// Create inserts a new item. Field validation and SKU uniqueness violations
// surface as domain errors from the store layer.
func (r *Repo) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	return r.store.Create(ctx, item)
}

// UpdateByID applies a partial update and returns the updated item.
func (r *Repo) UpdateByID(ctx context.Context, id uuid.UUID, patch Patch) (*domain.InventoryItem, error) {
	return r.store.UpdateByID(ctx, id, patch.values())
}

// UpdateQuantity sets just the quantity.
func (r *Repo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*domain.InventoryItem, error) {
	return r.UpdateByID(ctx, id, Patch{Quantity: &quantity})
}

// DeleteByID removes the item and returns it.
func (r *Repo) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	return r.store.DeleteByID(ctx, id)
}

// SKUExists reports whether any item, regardless of owner, uses the SKU.
func (r *Repo) SKUExists(ctx context.Context, sku string) (bool, error) {
	n, err := r.store.Count(ctx, squirrel.Eq{"sku": strings.ToUpper(strings.TrimSpace(sku))})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func categoryNames() []string {
	cats := domain.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return names
}

// escapeLike escapes LIKE wildcards so a search term matches literally.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
