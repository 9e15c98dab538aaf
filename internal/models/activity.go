package models

import "time"

// Activity is one entry in the dashboard's recent-activity feed,
// recorded whenever the product set is mutated.
type Activity struct {
	ID      string    `json:"id"`
	Action  string    `json:"action"`
	Product string    `json:"product"`
	At      time.Time `json:"at"`
}

const (
	ActivityProductAdded   = "Product Added"
	ActivityProductUpdated = "Product Updated"
	ActivityProductDeleted = "Product Deleted"
	ActivityStockUpdated   = "Stock Updated"
)
