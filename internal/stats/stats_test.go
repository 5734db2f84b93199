package stats

import (
	"testing"

	"stash/internal/model"
)

func item(name string, price float64, cur model.Currency, wantToSell bool, categoryID string) model.Item {
	return model.Item{
		ID:         name,
		Name:       name,
		Price:      price,
		Currency:   cur,
		WantToSell: wantToSell,
		CategoryID: categoryID,
	}
}

func TestFilterZeroPriceBoundsMatchEverything(t *testing.T) {
	items := []model.Item{
		item("USD item", 10, model.CurrencyUSD, true, ""),
		item("ILS item", 5, model.CurrencyILS, false, ""),
	}

	all := Filter(items, model.InsightsFilter{PriceMin: 0, PriceMax: 0})
	if len(all) != 2 {
		t.Errorf("zero bounds should match everything, got %d items", len(all))
	}

	min6 := Filter(items, model.InsightsFilter{PriceMin: 6})
	if len(min6) != 1 || min6[0].Name != "USD item" {
		t.Errorf("expected only the USD item above 6, got %v", min6)
	}
}

func TestFilterComposesWithAnd(t *testing.T) {
	items := []model.Item{
		item("Red Bike", 100, model.CurrencyEUR, true, "cat1"),
		item("Blue Bike", 80, model.CurrencyEUR, false, "cat1"),
		item("Red Car", 5000, model.CurrencyEUR, true, "cat2"),
	}

	got := Filter(items, model.InsightsFilter{
		CategoryID:     "cat1",
		WantToSellOnly: true,
		SearchText:     "  red ",
	})
	if len(got) != 1 || got[0].Name != "Red Bike" {
		t.Errorf("expected only Red Bike, got %v", got)
	}
}

func TestFilterSearchCaseInsensitiveSubstring(t *testing.T) {
	items := []model.Item{
		item("MacBook Pro", 2000, model.CurrencyUSD, false, ""),
		item("Thinkpad", 900, model.CurrencyUSD, false, ""),
	}

	got := Filter(items, model.InsightsFilter{SearchText: "macbook"})
	if len(got) != 1 || got[0].Name != "MacBook Pro" {
		t.Errorf("expected MacBook Pro, got %v", got)
	}

	blank := Filter(items, model.InsightsFilter{SearchText: "   "})
	if len(blank) != 2 {
		t.Errorf("blank search should match everything, got %d", len(blank))
	}
}

func TestFilterPreservesOrderAndBounds(t *testing.T) {
	items := []model.Item{
		item("A", 10, model.CurrencyUSD, false, ""),
		item("B", 20, model.CurrencyUSD, false, ""),
		item("C", 30, model.CurrencyUSD, false, ""),
	}

	got := Filter(items, model.InsightsFilter{PriceMin: 10, PriceMax: 20})
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "B" {
		t.Errorf("bounds are inclusive and order preserved, got %v", got)
	}
}

func TestComputeScenario(t *testing.T) {
	items := []model.Item{
		item("Sellable", 10, model.CurrencyUSD, true, ""),
		item("Keeper", 5, model.CurrencyILS, false, ""),
	}

	got := Compute(items, nil, model.InsightsFilter{})

	if got.TotalItems != 2 {
		t.Errorf("expected 2 items, got %d", got.TotalItems)
	}
	if got.TotalValue != 15 {
		t.Errorf("expected total 15, got %v", got.TotalValue)
	}
	if got.SellableValue != 10 {
		t.Errorf("expected sellable 10, got %v", got.SellableValue)
	}

	wantTotal := model.ByCurrency{model.CurrencyUSD: 10, model.CurrencyILS: 5, model.CurrencyEUR: 0}
	for cur, want := range wantTotal {
		if got.TotalByCurrency[cur] != want {
			t.Errorf("totalByCurrency[%s]: expected %v, got %v", cur, want, got.TotalByCurrency[cur])
		}
	}

	wantSellable := model.ByCurrency{model.CurrencyUSD: 10, model.CurrencyILS: 0, model.CurrencyEUR: 0}
	for cur, want := range wantSellable {
		if got.SellableByCurrency[cur] != want {
			t.Errorf("sellableByCurrency[%s]: expected %v, got %v", cur, want, got.SellableByCurrency[cur])
		}
	}
}

func TestComputeDefaultsMissingCurrencyToILS(t *testing.T) {
	items := []model.Item{
		item("No currency", 7, "", false, ""),
	}

	got := Compute(items, nil, model.InsightsFilter{})
	if got.TotalByCurrency[model.CurrencyILS] != 7 {
		t.Errorf("expected 7 bucketed under ILS, got %v", got.TotalByCurrency)
	}
}

func TestComputeCurrencySumsMatchCrossCurrencyTotals(t *testing.T) {
	items := []model.Item{
		item("a", 12.5, model.CurrencyUSD, true, "c1"),
		item("b", 7.25, model.CurrencyEUR, false, "c1"),
		item("c", 30, model.CurrencyILS, true, ""),
		item("d", 0.25, model.CurrencyUSD, false, "c2"),
	}

	got := Compute(items, nil, model.InsightsFilter{})

	var sum float64
	for _, v := range got.TotalByCurrency {
		sum += v
	}
	if sum != got.TotalValue {
		t.Errorf("currency sums %v != total %v", sum, got.TotalValue)
	}

	var sellableSum float64
	for _, v := range got.SellableByCurrency {
		sellableSum += v
	}
	if sellableSum != got.SellableValue {
		t.Errorf("sellable currency sums %v != sellable total %v", sellableSum, got.SellableValue)
	}

	var categorySum float64
	for _, row := range got.PerCategory {
		for _, v := range row.ByCurrency {
			categorySum += v
		}
	}
	if categorySum != got.TotalValue {
		t.Errorf("per-category sums %v != total %v", categorySum, got.TotalValue)
	}
}

func TestComputePerCategorySortedByValueDescending(t *testing.T) {
	categories := []model.Category{
		{ID: "small", Name: "Small"},
		{ID: "big", Name: "Big"},
	}
	items := []model.Item{
		item("cheap", 50, model.CurrencyUSD, false, "small"),
		item("expensive", 100, model.CurrencyUSD, false, "big"),
	}

	got := Compute(items, categories, model.InsightsFilter{})
	if len(got.PerCategory) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got.PerCategory))
	}
	if got.PerCategory[0].CategoryName != "Big" || got.PerCategory[0].TotalValue != 100 {
		t.Errorf("expected Big row first, got %+v", got.PerCategory[0])
	}
	if got.PerCategory[1].CategoryName != "Small" {
		t.Errorf("expected Small row second, got %+v", got.PerCategory[1])
	}
}

func TestComputeUncategorizedBucket(t *testing.T) {
	categories := []model.Category{{ID: "real", Name: "Real"}}
	items := []model.Item{
		item("no category", 10, model.CurrencyUSD, false, ""),
		item("dangling", 20, model.CurrencyUSD, false, "deleted-long-ago"),
		item("categorized", 5, model.CurrencyUSD, false, "real"),
	}

	got := Compute(items, categories, model.InsightsFilter{})
	if len(got.PerCategory) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got.PerCategory))
	}

	for _, row := range got.PerCategory {
		switch row.CategoryID {
		case "":
			if row.CategoryName != model.UncategorizedName || row.TotalValue != 10 {
				t.Errorf("empty-id row: %+v", row)
			}
		case "deleted-long-ago":
			// A dangling reference keeps its raw id but resolves to the
			// Uncategorized display name.
			if row.CategoryName != model.UncategorizedName || row.TotalValue != 20 {
				t.Errorf("dangling row: %+v", row)
			}
		case "real":
			if row.CategoryName != "Real" || row.ItemCount != 1 {
				t.Errorf("real row: %+v", row)
			}
		default:
			t.Errorf("unexpected row: %+v", row)
		}
	}
}

func TestComputeEmptyInputIsZeroNotError(t *testing.T) {
	got := Compute(nil, nil, model.InsightsFilter{})

	if got.TotalItems != 0 || got.TotalValue != 0 || got.SellableValue != 0 {
		t.Errorf("expected zero stats, got %+v", got)
	}
	if len(got.TotalByCurrency) != 3 || len(got.SellableByCurrency) != 3 {
		t.Error("currency maps must be zero-filled even for empty input")
	}
	for _, c := range model.Currencies() {
		if got.TotalByCurrency[c] != 0 {
			t.Errorf("expected zero for %s, got %v", c, got.TotalByCurrency[c])
		}
	}
	if len(got.PerCategory) != 0 {
		t.Errorf("expected no category rows, got %v", got.PerCategory)
	}
}

func TestComputeStatsMatchesInsights(t *testing.T) {
	categories := []model.Category{{ID: "c1", Name: "Gear"}}
	items := []model.Item{
		item("a", 100, model.CurrencyUSD, true, "c1"),
		item("b", 40, model.CurrencyILS, false, "c1"),
		item("c", 60, model.CurrencyEUR, true, ""),
	}

	legacy := ComputeStats(items, categories, true)
	full := Compute(items, categories, model.InsightsFilter{WantToSellOnly: true})

	if legacy.TotalValue != full.TotalValue {
		t.Errorf("totals diverge: %v vs %v", legacy.TotalValue, full.TotalValue)
	}
	for _, cur := range model.Currencies() {
		if legacy.TotalByCurrency[cur] != full.TotalByCurrency[cur] {
			t.Errorf("byCurrency[%s] diverges: %v vs %v", cur, legacy.TotalByCurrency[cur], full.TotalByCurrency[cur])
		}
	}
	if len(legacy.ValuePerCategory) != len(full.PerCategory) {
		t.Fatalf("row counts diverge: %d vs %d", len(legacy.ValuePerCategory), len(full.PerCategory))
	}
	for i, row := range legacy.ValuePerCategory {
		if row.CategoryID != full.PerCategory[i].CategoryID || row.Total != full.PerCategory[i].TotalValue {
			t.Errorf("row %d diverges: %+v vs %+v", i, row, full.PerCategory[i])
		}
	}
}

func TestComputeFloatAccumulationIsExact(t *testing.T) {
	// 0.1 added ten times drifts with plain float64 accumulation; the
	// decimal-backed sums keep it exact.
	var items []model.Item
	for i := 0; i < 10; i++ {
		items = append(items, item("tiny", 0.1, model.CurrencyEUR, false, ""))
	}

	got := Compute(items, nil, model.InsightsFilter{})
	if got.TotalValue != 1 {
		t.Errorf("expected exactly 1, got %v", got.TotalValue)
	}
	if got.TotalByCurrency[model.CurrencyEUR] != 1 {
		t.Errorf("expected exactly 1 EUR, got %v", got.TotalByCurrency[model.CurrencyEUR])
	}
}
