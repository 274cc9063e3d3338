package domain

import (
	"time"

	"github.com/google/uuid"
)

// Thresholds and limits enforced on inventory items.
const (
	MaxNameLen           = 100
	MaxDescriptionLen    = 500
	DefaultLowStockLevel = 10
)

// InventoryItem is a stock record owned by a single user. The owner is the
// sole access-control boundary: an item is only ever visible to operations
// scoped to its OwnerID.
type InventoryItem struct {
	ID                uuid.UUID `db:"id"`
	Name              string    `db:"name"`
	Description       string    `db:"description"`
	Category          Category  `db:"category"`
	SKU               string    `db:"sku"`
	Quantity          int       `db:"quantity"`
	Price             float64   `db:"price"`
	LowStockThreshold int       `db:"low_stock_threshold"`
	OwnerID           uuid.UUID `db:"owner_id"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// StockStatus classifies the item's quantity against its threshold.
// Computed on every read, never stored, so it cannot go stale.
func (i *InventoryItem) StockStatus() StockStatus {
	switch {
	case i.Quantity == 0:
		return StockStatusOut
	case i.Quantity <= i.LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// IsLowStock reports whether the item is at or below its low-stock threshold.
// An out-of-stock item is also low-stock.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
