package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ims-io/ims/tests/e2e/fixtures"
	"github.com/ims-io/ims/tests/e2e/pages"
)

func TestStockAdjustment(t *testing.T) {
	session := fixtures.NewSession(t)
	factory := fixtures.NewProductFactory(t, session)
	inv := session.Pages.OnInventoryPage()

	product := factory.Create(func(p *pages.Product) {
		p.Stock = 20
		p.LowStockThreshold = 5
	})

	t.Run("increase updates the row in place", func(t *testing.T) {
		require.NoError(t, inv.Navigate())

		before, err := inv.StockBySKU(product.SKU)
		require.NoError(t, err)
		require.Equal(t, 20, before)

		require.NoError(t, inv.AdjustStockBySKU(product.SKU, 7))

		after, err := inv.StockBySKU(product.SKU)
		require.NoError(t, err)
		assert.Equal(t, before+7, after)
	})

	t.Run("decrease updates the row in place", func(t *testing.T) {
		before, err := inv.StockBySKU(product.SKU)
		require.NoError(t, err)

		require.NoError(t, inv.AdjustStockBySKU(product.SKU, -4))

		after, err := inv.StockBySKU(product.SKU)
		require.NoError(t, err)
		assert.Equal(t, before-4, after)
	})

	t.Run("overdraw is rejected and stock unchanged", func(t *testing.T) {
		before, err := inv.StockBySKU(product.SKU)
		require.NoError(t, err)

		msg, err := inv.AdjustStockExpectingError(product.SKU, "-9999")
		require.NoError(t, err)
		assert.Contains(t, msg, "Stock cannot be negative")

		require.NoError(t, inv.CancelAdjustment())

		after, err := inv.StockBySKU(product.SKU)
		require.NoError(t, err)
		assert.Equal(t, before, after, "rejected adjustment must not change stock")
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		msg, err := inv.AdjustStockExpectingError(product.SKU, "")
		require.NoError(t, err)
		assert.Contains(t, msg, "Please enter a valid number")
		require.NoError(t, inv.CancelAdjustment())
	})
}
