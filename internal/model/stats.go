package model

// ByCurrency maps every supported currency to a summed price. All three keys
// are always present, zero-filled.
type ByCurrency map[Currency]float64

// NewByCurrency returns a zero-filled currency map.
func NewByCurrency() ByCurrency {
	m := make(ByCurrency, len(Currencies()))
	for _, c := range Currencies() {
		m[c] = 0
	}
	return m
}

// InsightsFilter narrows the item set fed into an insights computation.
// Unset fields impose no constraint. A zero price bound means "not set", not
// a literal zero bound.
type InsightsFilter struct {
	CategoryID     string
	WantToSellOnly bool
	PriceMin       float64
	PriceMax       float64
	SearchText     string
}

// CategoryStat is one per-category row of an insights breakdown. An empty
// CategoryID marks the Uncategorized row.
type CategoryStat struct {
	CategoryID   string     `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	TotalValue   float64    `json:"totalValue"`
	ItemCount    int        `json:"itemCount"`
	ByCurrency   ByCurrency `json:"byCurrency"`
}

// Insights holds the full filtered statistics view. TotalValue and
// SellableValue sum across currencies and are only coarse secondary figures;
// the per-currency maps are the display-correct numbers.
type Insights struct {
	TotalItems         int            `json:"totalItems"`
	TotalValue         float64        `json:"totalValue"`
	SellableValue      float64        `json:"sellableValue"`
	TotalByCurrency    ByCurrency     `json:"totalByCurrency"`
	SellableByCurrency ByCurrency     `json:"sellableByCurrency"`
	PerCategory        []CategoryStat `json:"perCategory"`
}

// CategoryValue is one row of the compact statistics view.
type CategoryValue struct {
	CategoryID   string     `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	Total        float64    `json:"total"`
	ByCurrency   ByCurrency `json:"byCurrency"`
}

// Stats is the compact whole-collection view used by the statistics page.
type Stats struct {
	TotalValue       float64         `json:"totalValue"`
	TotalByCurrency  ByCurrency      `json:"totalByCurrency"`
	ValuePerCategory []CategoryValue `json:"valuePerCategory"`
}
