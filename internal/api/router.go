package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered. The API is
// the boundary for the local UI; it carries no authentication because the
// server binds to loopback and serves a single user.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{DB: db}
	categoriesHandler := &CategoriesHandler{DB: db}
	statsHandler := &StatsHandler{DB: db}

	// Items.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)
	mux.HandleFunc("PUT /api/items/{id}/image", itemsHandler.UploadImage)

	// Categories.
	mux.HandleFunc("GET /api/categories", categoriesHandler.List)
	mux.HandleFunc("POST /api/categories", categoriesHandler.Create)
	mux.HandleFunc("GET /api/categories/{id}", categoriesHandler.Get)
	mux.HandleFunc("PUT /api/categories/{id}", categoriesHandler.Update)
	mux.HandleFunc("DELETE /api/categories/{id}", categoriesHandler.Delete)

	// Statistics.
	mux.HandleFunc("GET /api/stats", statsHandler.Stats)
	mux.HandleFunc("GET /api/insights", statsHandler.Insights)
	mux.HandleFunc("GET /api/currencies", statsHandler.Currencies)

	return mux
}
