package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/ims-io/ims/tests/e2e/config"
)

// InventoryPage drives the /inventory screen and its stock-adjustment
// modal.
type InventoryPage struct {
	base
}

// NewInventoryPage builds an inventory page object bound to the page.
func NewInventoryPage(page playwright.Page, cfg *config.TestConfig) *InventoryPage {
	return &InventoryPage{base{page: page, cfg: cfg}}
}

// Navigate opens the inventory screen and waits for it to render.
func (p *InventoryPage) Navigate() error {
	if _, err := p.page.Goto(p.cfg.BaseURL + "/inventory"); err != nil {
		return fmt.Errorf("could not open inventory page: %w", err)
	}
	if err := p.page.GetByTestId("inventory-title").WaitFor(); err != nil {
		return fmt.Errorf("inventory page did not render: %w", err)
	}
	return nil
}

// RowBySKU locates the inventory row whose SKU cell carries the given
// value.
func (p *InventoryPage) RowBySKU(sku string) playwright.Locator {
	return p.page.Locator(`[data-testid^="inventory-row-"]`).Filter(playwright.LocatorFilterOptions{
		HasText: sku,
	})
}

// rowID extracts the product ID from an inventory row's data-testid.
func (p *InventoryPage) rowID(row playwright.Locator) (string, error) {
	testID, err := row.GetAttribute("data-testid")
	if err != nil {
		return "", fmt.Errorf("could not read inventory row testid: %w", err)
	}
	const prefix = "inventory-row-"
	if len(testID) <= len(prefix) {
		return "", fmt.Errorf("unexpected inventory row testid %q", testID)
	}
	return testID[len(prefix):], nil
}

// StockBySKU reads the current stock shown for a product.
func (p *InventoryPage) StockBySKU(sku string) (int, error) {
	row := p.RowBySKU(sku)
	if err := row.WaitFor(); err != nil {
		return 0, fmt.Errorf("inventory row for %s not found: %w", sku, err)
	}
	text, err := row.Locator(".js-stock").TextContent()
	if err != nil {
		return 0, fmt.Errorf("could not read stock for %s: %w", sku, err)
	}
	stock, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("stock cell for %s is not a number: %w", sku, err)
	}
	return stock, nil
}

// openAdjustModal clicks the adjust button on a row and waits for the
// modal to appear.
func (p *InventoryPage) openAdjustModal(sku string) error {
	row := p.RowBySKU(sku)
	if err := row.WaitFor(); err != nil {
		return fmt.Errorf("inventory row for %s not found: %w", sku, err)
	}
	id, err := p.rowID(row)
	if err != nil {
		return err
	}
	if err := p.page.GetByTestId("adjust-stock-" + id).Click(); err != nil {
		return fmt.Errorf("could not open adjust modal for %s: %w", sku, err)
	}
	if err := p.page.GetByTestId("adjustment-input").WaitFor(); err != nil {
		return fmt.Errorf("adjust modal did not appear: %w", err)
	}
	return nil
}

// AdjustStockBySKU applies a delta to a product's stock through the
// modal and waits for the modal to close, which signals the row has
// been updated in place.
func (p *InventoryPage) AdjustStockBySKU(sku string, delta int) error {
	if err := p.openAdjustModal(sku); err != nil {
		return err
	}
	if err := p.page.GetByTestId("adjustment-input").Fill(strconv.Itoa(delta)); err != nil {
		return fmt.Errorf("could not fill adjustment: %w", err)
	}
	if err := p.page.GetByTestId("confirm-adjust-button").Click(); err != nil {
		return fmt.Errorf("could not confirm adjustment: %w", err)
	}
	if err := p.page.GetByTestId("adjust-stock-modal").WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateHidden,
	}); err != nil {
		return fmt.Errorf("adjust modal did not close: %w", err)
	}
	return nil
}

// AdjustStockExpectingError submits an adjustment that the application
// should reject and returns the inline error text. The modal stays open.
func (p *InventoryPage) AdjustStockExpectingError(sku, adjustment string) (string, error) {
	if err := p.openAdjustModal(sku); err != nil {
		return "", err
	}
	if err := p.page.GetByTestId("adjustment-input").Fill(adjustment); err != nil {
		return "", fmt.Errorf("could not fill adjustment: %w", err)
	}
	if err := p.page.GetByTestId("confirm-adjust-button").Click(); err != nil {
		return "", fmt.Errorf("could not confirm adjustment: %w", err)
	}
	errLoc := p.page.GetByTestId("adjustment-error")
	if err := errLoc.WaitFor(); err != nil {
		return "", fmt.Errorf("adjustment error did not appear: %w", err)
	}
	text, err := errLoc.TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read adjustment error: %w", err)
	}
	return text, nil
}

// CancelAdjustment dismisses the adjustment modal without applying.
func (p *InventoryPage) CancelAdjustment() error {
	if err := p.page.GetByTestId("cancel-adjust-button").Click(); err != nil {
		return fmt.Errorf("could not cancel adjustment: %w", err)
	}
	if err := p.page.GetByTestId("adjust-stock-modal").WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateHidden,
	}); err != nil {
		return fmt.Errorf("adjust modal did not close: %w", err)
	}
	return nil
}

// LowStockBadgeVisible reports whether a product currently shows the
// low-stock badge.
func (p *InventoryPage) LowStockBadgeVisible(sku string) (bool, error) {
	row := p.RowBySKU(sku)
	if err := row.WaitFor(); err != nil {
		return false, fmt.Errorf("inventory row for %s not found: %w", sku, err)
	}
	id, err := p.rowID(row)
	if err != nil {
		return false, err
	}
	vis, err := p.page.GetByTestId("low-stock-badge-" + id).IsVisible()
	if err != nil {
		return false, fmt.Errorf("could not check low-stock badge for %s: %w", sku, err)
	}
	return vis, nil
}

// LowStockAlert returns the locator for the page-level low-stock banner.
func (p *InventoryPage) LowStockAlert() playwright.Locator {
	return p.page.GetByTestId("low-stock-alert")
}

// LowStockAlertText waits for the banner and returns its text.
func (p *InventoryPage) LowStockAlertText() (string, error) {
	alert := p.LowStockAlert()
	if err := alert.WaitFor(); err != nil {
		return "", fmt.Errorf("low-stock alert did not appear: %w", err)
	}
	text, err := alert.TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read low-stock alert: %w", err)
	}
	return text, nil
}
