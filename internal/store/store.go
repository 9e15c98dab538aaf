// Package store holds the demo application's product and activity state.
// The demo keeps everything in process memory: the dataset starts from a
// fixed default set and every mutation goes through the Store interface,
// so the rest of the app never touches shared variables directly.
package store

import (
	"errors"

	"github.com/ims-io/ims/internal/models"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateSKU  = errors.New("sku already exists")
	ErrNegativeStock = errors.New("stock cannot be negative")
)

// Store is the application's product state with an explicit lifecycle:
// defaults are loaded at construction and Reset restores them.
type Store interface {
	List() []models.Product
	Get(id string) (models.Product, error)
	GetBySKU(sku string) (models.Product, error)
	Create(p models.Product) (models.Product, error)
	Update(id string, upd models.ProductUpdate) (models.Product, error)
	Delete(id string) error
	AdjustStock(id string, delta int) (models.Product, error)
	Search(query string) []models.Product
	LowStock() []models.Product

	RecentActivity(limit int) []models.Activity

	// Epoch identifies the current session generation. Reset bumps it,
	// which invalidates every token minted before the reset.
	Epoch() int64
	Reset()
}
