package api

import (
	"database/sql"
	"errors"
	"net/http"

	"stash/internal/model"
	"stash/internal/store"
)

// CategoriesHandler handles category CRUD endpoints.
type CategoriesHandler struct {
	DB *sql.DB
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := store.ListCategories(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	jsonResponse(w, http.StatusOK, categories)
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	cat, err := store.CreateCategory(r.Context(), h.DB, model.Category{
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	jsonResponse(w, http.StatusCreated, cat)
}

// Get handles GET /api/categories/{id}.
func (h *CategoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	cat, err := store.GetCategory(r.Context(), h.DB, r.PathValue("id"))
	if errors.Is(err, store.ErrCategoryNotFound) {
		jsonError(w, http.StatusNotFound, "category not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get category")
		return
	}
	jsonResponse(w, http.StatusOK, cat)
}

// Update handles PUT /api/categories/{id}.
func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.CategoryPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.Name != nil && *patch.Name == "" {
		jsonError(w, http.StatusBadRequest, "name must not be empty")
		return
	}

	cat, err := store.UpdateCategory(r.Context(), h.DB, r.PathValue("id"), patch)
	if errors.Is(err, store.ErrCategoryNotFound) {
		jsonError(w, http.StatusNotFound, "category not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update category")
		return
	}
	jsonResponse(w, http.StatusOK, cat)
}

// Delete handles DELETE /api/categories/{id}. Items referencing the category
// are moved to Uncategorized as part of the same operation.
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteCategory(r.Context(), h.DB, r.PathValue("id")); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
