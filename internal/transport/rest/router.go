package rest

import (
	"net/http"

	"github.com/avoronin/stockpile-backend/internal/transport/middleware"
)

// NewRouter wires all REST routes. The inventory routes and /api/auth/me sit
// behind RequireAuth; register and login are public.
func NewRouter(authH *AuthHandler, invH *InventoryHandler, healthH *HealthHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", healthH.Live)
	mux.HandleFunc("GET /health/ready", healthH.Ready)

	mux.HandleFunc("POST /api/auth/register", authH.Register)
	mux.HandleFunc("POST /api/auth/login", authH.Login)
	mux.Handle("GET /api/auth/me", middleware.RequireAuth(http.HandlerFunc(authH.Me)))
	mux.Handle("POST /api/auth/logout", middleware.RequireAuth(http.HandlerFunc(authH.Logout)))

	requireAuth := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}

	mux.Handle("GET /api/inventory", requireAuth(invH.List))
	mux.Handle("POST /api/inventory", requireAuth(invH.Create))
	// Fixed segments before the {id} wildcard so they are not swallowed by it.
	mux.Handle("GET /api/inventory/lowstock/items", requireAuth(invH.LowStock))
	mux.Handle("GET /api/inventory/stats/summary", requireAuth(invH.Stats))
	mux.Handle("GET /api/inventory/{id}", requireAuth(invH.Get))
	mux.Handle("PUT /api/inventory/{id}", requireAuth(invH.Update))
	mux.Handle("DELETE /api/inventory/{id}", requireAuth(invH.Delete))
	mux.Handle("PATCH /api/inventory/{id}/quantity", requireAuth(invH.Quantity))

	return mux
}
