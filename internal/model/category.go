package model

import "time"

// Category represents a named grouping for items.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Display defaults applied when a category is created without them.
const (
	DefaultCategoryColor = "#3B82F6"
	DefaultCategoryIcon  = "📦"
)

// UncategorizedName is the display name for items without a resolvable
// category.
const UncategorizedName = "Uncategorized"

// CategoryPatch holds optional fields for a partial category update. Nil
// fields leave the stored value untouched.
type CategoryPatch struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

// Apply merges the set fields of the patch over cat. The category's id and
// creation time are never touched.
func (p CategoryPatch) Apply(cat *Category) {
	if p.Name != nil {
		cat.Name = *p.Name
	}
	if p.Color != nil {
		cat.Color = *p.Color
	}
	if p.Icon != nil {
		cat.Icon = *p.Icon
	}
}
