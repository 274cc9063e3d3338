package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/avoronin/stockpile-backend/internal/adapter/postgres/store"
	"github.com/avoronin/stockpile-backend/internal/domain"
	"github.com/avoronin/stockpile-backend/internal/service/inventory"
	"github.com/avoronin/stockpile-backend/pkg/ctxutil"
)

// inventoryService defines the minimal interface needed by InventoryHandler.
type inventoryService interface {
	ListItems(ctx context.Context, ownerID uuid.UUID, input inventory.ListItemsInput) (*store.List[domain.InventoryItem], error)
	GetItem(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.InventoryItem, error)
	CreateItem(ctx context.Context, ownerID uuid.UUID, input inventory.CreateItemInput) (*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, ownerID, itemID uuid.UUID, input inventory.UpdateItemInput) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.InventoryItem, error)
	UpdateQuantity(ctx context.Context, ownerID, itemID uuid.UUID, quantity int) (*domain.InventoryItem, error)
	LowStockItems(ctx context.Context, ownerID uuid.UUID) ([]*domain.InventoryItem, int, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (*inventory.Statistics, error)
}

// InventoryHandler serves inventory REST endpoints. Every route sits behind
// the auth middleware, so a missing user ID in the context is a 401.
type InventoryHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: logger.With("handler", "inventory")}
}

type createItemRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	SKU               string  `json:"sku"`
	Quantity          int     `json:"quantity"`
	Price             float64 `json:"price"`
	LowStockThreshold *int    `json:"lowStockThreshold"`
}

type updateItemRequest struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Category          *string  `json:"category"`
	SKU               *string  `json:"sku"`
	Quantity          *int     `json:"quantity"`
	Price             *float64 `json:"price"`
	LowStockThreshold *int     `json:"lowStockThreshold"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type itemResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Category          string    `json:"category"`
	SKU               string    `json:"sku"`
	Quantity          int       `json:"quantity"`
	Price             float64   `json:"price"`
	LowStockThreshold int       `json:"lowStockThreshold"`
	StockStatus       string    `json:"stockStatus"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type statsResponse struct {
	TotalItems      int    `json:"totalItems"`
	TotalValue      string `json:"totalValue"`
	LowStockCount   int    `json:"lowStockCount"`
	OutOfStockCount int    `json:"outOfStockCount"`
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	input := inventory.ListItemsInput{
		Sort:     q.Get("sort"),
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	var err error
	if input.Page, err = intQuery(q.Get("page")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid page")
		return
	}
	if input.Limit, err = intQuery(q.Get("limit")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	list, err := h.svc.ListItems(r.Context(), ownerID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    toItemResponses(list.Items),
		Pagination: &pagination{
			Page:  list.Pagination.Page,
			Limit: list.Pagination.Limit,
			Total: list.Pagination.Total,
			Pages: list.Pagination.Pages,
		},
	})
}

// Get handles GET /api/inventory/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, itemID, ok := h.identify(w, r)
	if !ok {
		return
	}

	item, err := h.svc.GetItem(r.Context(), ownerID, itemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toItemResponse(item))
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.CreateItem(r.Context(), ownerID, inventory.CreateItemInput{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		SKU:               req.SKU,
		Quantity:          req.Quantity,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toItemResponse(item))
}

// Update handles PUT /api/inventory/{id}.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, itemID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), ownerID, itemID, inventory.UpdateItemInput{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		SKU:               req.SKU,
		Quantity:          req.Quantity,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /api/inventory/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, itemID, ok := h.identify(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.DeleteItem(r.Context(), ownerID, itemID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "item deleted"})
}

// Quantity handles PATCH /api/inventory/{id}/quantity.
func (h *InventoryHandler) Quantity(w http.ResponseWriter, r *http.Request) {
	ownerID, itemID, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.UpdateQuantity(r.Context(), ownerID, itemID, req.Quantity)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toItemResponse(item))
}

// LowStock handles GET /api/inventory/lowstock/items.
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	items, count, err := h.svc.LowStockItems(r.Context(), ownerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    toItemResponses(items),
		Count:   &count,
	})
}

// Stats handles GET /api/inventory/stats/summary.
func (h *InventoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	stats, err := h.svc.Stats(r.Context(), ownerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, statsResponse{
		TotalItems:      stats.TotalItems,
		TotalValue:      stats.TotalValue,
		LowStockCount:   stats.LowStockCount,
		OutOfStockCount: stats.OutOfStockCount,
	})
}

// identify extracts the authenticated owner and the {id} path segment,
// writing the appropriate error response when either is missing.
func (h *InventoryHandler) identify(w http.ResponseWriter, r *http.Request) (ownerID, itemID uuid.UUID, ok bool) {
	ownerID, ok = ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	itemID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, uuid.Nil, false
	}

	return ownerID, itemID, true
}

func intQuery(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func toItemResponse(item *domain.InventoryItem) itemResponse {
	return itemResponse{
		ID:                item.ID.String(),
		Name:              item.Name,
		Description:       item.Description,
		Category:          item.Category.String(),
		SKU:               item.SKU,
		Quantity:          item.Quantity,
		Price:             item.Price,
		LowStockThreshold: item.LowStockThreshold,
		StockStatus:       item.StockStatus().String(),
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

func toItemResponses(items []*domain.InventoryItem) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	return out
}
