// Package pages implements the page-object model for the IMS screens.
// Every element is located by its data-testid so the objects survive
// styling and layout changes.
package pages

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/ims-io/ims/tests/e2e/config"
)

// Product is the payload the harness feeds into the creation form.
// IDs and timestamps are assigned by the application.
type Product struct {
	SKU               string
	Name              string
	Description       string
	Price             float64
	Stock             int
	Category          string
	LowStockThreshold int
}

// categories mirrors the application's fixed category set.
var categories = []string{"Electronics", "Accessories", "Software", "Hardware"}

// base carries the shared page handle and the two capabilities every
// concrete page object inherits: the data-reset protocol and test-data
// generation.
type base struct {
	page playwright.Page
	cfg  *config.TestConfig
}

// ResetApplicationData restores the application to its default dataset:
// navigate to the root for a valid execution context, call the reset
// side-channel, clear client-side storage, then reload so the rendered
// UI matches storage. Idempotent. Note that the reset invalidates the
// current session; log in again before driving authenticated screens.
func (b *base) ResetApplicationData() error {
	if _, err := b.page.Goto(b.cfg.BaseURL + "/"); err != nil {
		return fmt.Errorf("reset: could not navigate to application root: %w", err)
	}
	if _, err := b.page.Context().Request().Post(b.cfg.BaseURL + "/api/reset"); err != nil {
		return fmt.Errorf("reset: could not call reset endpoint: %w", err)
	}
	if _, err := b.page.Evaluate("() => localStorage.clear()"); err != nil {
		return fmt.Errorf("reset: could not clear local storage: %w", err)
	}
	if _, err := b.page.Reload(); err != nil {
		return fmt.Errorf("reset: could not reload page: %w", err)
	}
	return nil
}

// GenerateTestProduct produces a structurally valid product payload whose
// SKU and name share a random discriminator, so two calls never collide
// even across parallel workers.
func (b *base) GenerateTestProduct() Product {
	tag := strings.ToUpper(uuid.NewString()[:8])
	return Product{
		SKU:               "TEST-" + tag,
		Name:              "Test Product " + tag,
		Description:       "Automated test product created at " + time.Now().Format(time.RFC3339),
		Price:             float64(rand.Intn(90000)+10000) / 100, // 100.00 - 999.99
		Stock:             rand.Intn(100) + 1,
		Category:          categories[rand.Intn(len(categories))],
		LowStockThreshold: 10,
	}
}
