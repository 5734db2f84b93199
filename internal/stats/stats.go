// Package stats computes display statistics over item collections. All
// functions are pure: no storage access, no side effects, deterministic for a
// given input.
//
// Sums are accumulated with decimals and converted to float64 only at the
// result edge, so repeated additions never drift.
package stats

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"stash/internal/model"
)

// Filter returns the items satisfying every set field of f, in input order.
// Unset fields impose no constraint; a zero price bound counts as unset.
func Filter(items []model.Item, f model.InsightsFilter) []model.Item {
	query := strings.ToLower(strings.TrimSpace(f.SearchText))

	var result []model.Item
	for _, item := range items {
		if f.CategoryID != "" && item.CategoryID != f.CategoryID {
			continue
		}
		if f.WantToSellOnly && !item.WantToSell {
			continue
		}
		if f.PriceMin > 0 && item.Price < f.PriceMin {
			continue
		}
		if f.PriceMax > 0 && item.Price > f.PriceMax {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// bucket accumulates one per-category row.
type bucket struct {
	count int
	total decimal.Decimal
	byCur map[model.Currency]decimal.Decimal
}

// Compute filters items with f and aggregates totals, per-currency buckets
// and a per-category breakdown sorted by value, descending. Category names
// resolve through categories; items with an empty or dangling categoryId land
// in the Uncategorized row. Ties keep grouping order.
func Compute(items []model.Item, categories []model.Category, f model.InsightsFilter) model.Insights {
	filtered := Filter(items, f)

	var total, sellable decimal.Decimal
	totalByCur := make(map[model.Currency]decimal.Decimal)
	sellableByCur := make(map[model.Currency]decimal.Decimal)

	buckets := make(map[string]*bucket)
	var order []string

	for _, item := range filtered {
		cur := item.Currency.OrDefault()
		price := decimal.NewFromFloat(item.Price)

		total = total.Add(price)
		totalByCur[cur] = totalByCur[cur].Add(price)
		if item.WantToSell {
			sellable = sellable.Add(price)
			sellableByCur[cur] = sellableByCur[cur].Add(price)
		}

		b := buckets[item.CategoryID]
		if b == nil {
			b = &bucket{byCur: make(map[model.Currency]decimal.Decimal)}
			buckets[item.CategoryID] = b
			order = append(order, item.CategoryID)
		}
		b.count++
		b.total = b.total.Add(price)
		b.byCur[cur] = b.byCur[cur].Add(price)
	}

	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	perCategory := make([]model.CategoryStat, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		name, ok := names[id]
		if id == "" || !ok {
			name = model.UncategorizedName
		}
		perCategory = append(perCategory, model.CategoryStat{
			CategoryID:   id,
			CategoryName: name,
			TotalValue:   b.total.InexactFloat64(),
			ItemCount:    b.count,
			ByCurrency:   toByCurrency(b.byCur),
		})
	}
	sort.SliceStable(perCategory, func(i, j int) bool {
		return perCategory[i].TotalValue > perCategory[j].TotalValue
	})

	return model.Insights{
		TotalItems:         len(filtered),
		TotalValue:         total.InexactFloat64(),
		SellableValue:      sellable.InexactFloat64(),
		TotalByCurrency:    toByCurrency(totalByCur),
		SellableByCurrency: toByCurrency(sellableByCur),
		PerCategory:        perCategory,
	}
}

// ComputeStats produces the compact whole-collection statistics view. It is
// the full computation narrowed to an optional want-to-sell filter.
func ComputeStats(items []model.Item, categories []model.Category, wantToSellOnly bool) model.Stats {
	in := Compute(items, categories, model.InsightsFilter{WantToSellOnly: wantToSellOnly})

	rows := make([]model.CategoryValue, 0, len(in.PerCategory))
	for _, row := range in.PerCategory {
		rows = append(rows, model.CategoryValue{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Total:        row.TotalValue,
			ByCurrency:   row.ByCurrency,
		})
	}

	return model.Stats{
		TotalValue:       in.TotalValue,
		TotalByCurrency:  in.TotalByCurrency,
		ValuePerCategory: rows,
	}
}

// toByCurrency converts accumulated decimals into a zero-filled float map
// covering every supported currency.
func toByCurrency(sums map[model.Currency]decimal.Decimal) model.ByCurrency {
	out := model.NewByCurrency()
	for cur, sum := range sums {
		out[cur] = sum.InexactFloat64()
	}
	return out
}
