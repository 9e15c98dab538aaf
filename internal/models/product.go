package models

import "time"

type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryAccessories Category = "Accessories"
	CategorySoftware    Category = "Software"
	CategoryHardware    Category = "Hardware"
)

// Categories lists every valid product category in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryAccessories,
	CategorySoftware,
	CategoryHardware,
}

func ValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

type Product struct {
	ID                string    `json:"id"`
	SKU               string    `json:"sku"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	Stock             int       `json:"stock"`
	Category          Category  `json:"category"`
	LowStockThreshold int       `json:"lowStockThreshold"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// IsLowStock reports whether the product is at or below its threshold.
// Value receiver: templates look the method up on the Product values a
// loop yields, and a pointer method would not be in their method set.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// ProductUpdate carries a partial update. Nil fields are left unchanged;
// ID and CreatedAt are never touched.
type ProductUpdate struct {
	SKU               *string
	Name              *string
	Description       *string
	Price             *float64
	Stock             *int
	Category          *Category
	LowStockThreshold *int
}
