package api

import (
	"database/sql"
	"errors"
	"net/http"

	"stash/internal/imaging"
	"stash/internal/model"
	"stash/internal/store"
)

// maxImageUpload caps photo upload size before processing.
const maxImageUpload = 10 << 20 // 10 MiB

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type createItemRequest struct {
	Name       string         `json:"name"`
	Price      float64        `json:"price"`
	Currency   model.Currency `json:"currency"`
	WantToSell bool           `json:"wantToSell"`
	CategoryID string         `json:"categoryId"`
	ImageURL   string         `json:"imageUrl"`
}

// List handles GET /api/items. Supports category_id and want_to_sell query
// filters.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.ItemFilter{
		CategoryID: r.URL.Query().Get("category_id"),
	}
	switch r.URL.Query().Get("want_to_sell") {
	case "true":
		v := true
		filter.WantToSell = &v
	case "false":
		v := false
		filter.WantToSell = &v
	}

	items, err := store.ListItems(r.Context(), h.DB, filter)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Price < 0 {
		jsonError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, model.Item{
		Name:       req.Name,
		Price:      req.Price,
		Currency:   req.Currency,
		WantToSell: req.WantToSell,
		CategoryID: req.CategoryID,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}. The body is a partial patch; absent
// fields keep their stored values.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.Name != nil && *patch.Name == "" {
		jsonError(w, http.StatusBadRequest, "name must not be empty")
		return
	}
	if patch.Price != nil && *patch.Price < 0 {
		jsonError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	item, err := store.UpdateItem(r.Context(), h.DB, r.PathValue("id"), patch)
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}. Deleting an unknown id succeeds.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteItem(r.Context(), h.DB, r.PathValue("id")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles PUT /api/items/{id}/image. The raw body is processed
// into a compact JPEG and stored as a data URL in the item's imageUrl field.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	result, err := imaging.Process(http.MaxBytesReader(w, r.Body, maxImageUpload))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	url := result.DataURL()
	item, err := store.UpdateItem(r.Context(), h.DB, r.PathValue("id"), model.ItemPatch{ImageURL: &url})
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to store image")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}
