package model

import "time"

// Item represents a tracked possession.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Currency   Currency  `json:"currency,omitempty"`
	WantToSell bool      `json:"wantToSell"`
	CategoryID string    `json:"categoryId"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ItemPatch holds optional fields for a partial item update. Nil fields leave
// the stored value untouched.
type ItemPatch struct {
	Name       *string    `json:"name"`
	Price      *float64   `json:"price"`
	Currency   *Currency  `json:"currency"`
	WantToSell *bool      `json:"wantToSell"`
	CategoryID *string    `json:"categoryId"`
	ImageURL   *string    `json:"imageUrl"`
	CreatedAt  *time.Time `json:"createdAt"`
}

// Apply merges the set fields of the patch over item. The item's id is never
// touched.
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Currency != nil {
		item.Currency = *p.Currency
	}
	if p.WantToSell != nil {
		item.WantToSell = *p.WantToSell
	}
	if p.CategoryID != nil {
		item.CategoryID = *p.CategoryID
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.CreatedAt != nil {
		item.CreatedAt = *p.CreatedAt
	}
}

// ItemFilter narrows a listing. Unset fields match everything.
type ItemFilter struct {
	CategoryID string
	WantToSell *bool
}

// Matches reports whether the item satisfies every set filter field.
func (f ItemFilter) Matches(item Item) bool {
	if f.CategoryID != "" && item.CategoryID != f.CategoryID {
		return false
	}
	if f.WantToSell != nil && item.WantToSell != *f.WantToSell {
		return false
	}
	return true
}
