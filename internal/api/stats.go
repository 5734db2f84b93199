package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"stash/internal/model"
	"stash/internal/stats"
	"stash/internal/store"
)

// StatsHandler serves computed statistics. It only reads collections and
// feeds them through the pure aggregation functions.
type StatsHandler struct {
	DB *sql.DB
}

// collections loads both collections for an aggregation call.
func (h *StatsHandler) collections(r *http.Request) ([]model.Item, []model.Category, error) {
	items, err := store.ListItems(r.Context(), h.DB, model.ItemFilter{})
	if err != nil {
		return nil, nil, err
	}
	categories, err := store.ListCategories(r.Context(), h.DB)
	if err != nil {
		return nil, nil, err
	}
	return items, categories, nil
}

// Stats handles GET /api/stats, the compact whole-collection view. The only
// recognized query parameter is want_to_sell_only.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	items, categories, err := h.collections(r)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load collections")
		return
	}

	wantToSellOnly := r.URL.Query().Get("want_to_sell_only") == "true"
	jsonResponse(w, http.StatusOK, stats.ComputeStats(items, categories, wantToSellOnly))
}

// Insights handles GET /api/insights. Query parameters mirror the filter
// fields: category_id, want_to_sell_only, price_min, price_max, q.
func (h *StatsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := model.InsightsFilter{
		CategoryID:     query.Get("category_id"),
		WantToSellOnly: query.Get("want_to_sell_only") == "true",
		SearchText:     query.Get("q"),
	}
	var err error
	if filter.PriceMin, err = parsePrice(query.Get("price_min")); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid price_min")
		return
	}
	if filter.PriceMax, err = parsePrice(query.Get("price_max")); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid price_max")
		return
	}

	items, categories, err := h.collections(r)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load collections")
		return
	}

	jsonResponse(w, http.StatusOK, stats.Compute(items, categories, filter))
}

// Currencies handles GET /api/currencies, listing the supported currencies
// with their display symbols.
func (h *StatsHandler) Currencies(w http.ResponseWriter, r *http.Request) {
	type currencyInfo struct {
		Code   string `json:"code"`
		Symbol string `json:"symbol"`
	}

	currencies := model.Currencies()
	out := make([]currencyInfo, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, currencyInfo{Code: string(c), Symbol: c.Symbol()})
	}
	jsonResponse(w, http.StatusOK, out)
}

// parsePrice parses an optional price bound. Empty means unset (zero).
func parsePrice(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
