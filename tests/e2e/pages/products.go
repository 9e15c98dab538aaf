package pages

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"

	"github.com/ims-io/ims/tests/e2e/config"
)

// ProductUpdate holds optional field changes for an edit. Nil fields are
// left untouched on the form, so whatever the application pre-filled is
// preserved.
type ProductUpdate struct {
	SKU         *string
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Category    *string
}

// ProductsPage drives the /products listing and its create/edit forms.
type ProductsPage struct {
	base
}

// NewProductsPage builds a products page object bound to the page handle.
func NewProductsPage(page playwright.Page, cfg *config.TestConfig) *ProductsPage {
	return &ProductsPage{base{page: page, cfg: cfg}}
}

// Navigate opens the product listing and waits for the table or the
// empty-state message, whichever the dataset produces.
func (p *ProductsPage) Navigate() error {
	if _, err := p.page.Goto(p.cfg.BaseURL + "/products"); err != nil {
		return fmt.Errorf("could not open products page: %w", err)
	}
	if err := p.page.GetByTestId("products-title").WaitFor(); err != nil {
		return fmt.Errorf("products page did not render: %w", err)
	}
	return nil
}

// FillProductForm populates the creation/edit form with the given values.
// It fills every field, so use it for creation; edits should go through
// FillPartial.
func (p *ProductsPage) FillProductForm(product Product) error {
	fields := []struct {
		testID string
		value  string
	}{
		{"sku-input", product.SKU},
		{"name-input", product.Name},
		{"description-input", product.Description},
		{"price-input", strconv.FormatFloat(product.Price, 'f', 2, 64)},
		{"stock-input", strconv.Itoa(product.Stock)},
		{"threshold-input", strconv.Itoa(product.LowStockThreshold)},
	}
	for _, f := range fields {
		if err := p.page.GetByTestId(f.testID).Fill(f.value); err != nil {
			return fmt.Errorf("could not fill %s: %w", f.testID, err)
		}
	}
	if _, err := p.page.GetByTestId("category-input").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{product.Category},
	}); err != nil {
		return fmt.Errorf("could not select category: %w", err)
	}
	return nil
}

// FillPartial changes only the fields set in the update, leaving the
// rest as the form pre-filled them.
func (p *ProductsPage) FillPartial(update ProductUpdate) error {
	fill := func(testID, value string) error {
		if err := p.page.GetByTestId(testID).Fill(value); err != nil {
			return fmt.Errorf("could not fill %s: %w", testID, err)
		}
		return nil
	}
	if update.SKU != nil {
		if err := fill("sku-input", *update.SKU); err != nil {
			return err
		}
	}
	if update.Name != nil {
		if err := fill("name-input", *update.Name); err != nil {
			return err
		}
	}
	if update.Description != nil {
		if err := fill("description-input", *update.Description); err != nil {
			return err
		}
	}
	if update.Price != nil {
		if err := fill("price-input", strconv.FormatFloat(*update.Price, 'f', 2, 64)); err != nil {
			return err
		}
	}
	if update.Stock != nil {
		if err := fill("stock-input", strconv.Itoa(*update.Stock)); err != nil {
			return err
		}
	}
	if update.Category != nil {
		if _, err := p.page.GetByTestId("category-input").SelectOption(playwright.SelectOptionValues{
			Values: &[]string{*update.Category},
		}); err != nil {
			return fmt.Errorf("could not select category: %w", err)
		}
	}
	return nil
}

// CreateProduct walks the full creation flow: open the form, fill it,
// save, and wait to land back on the listing.
func (p *ProductsPage) CreateProduct(product Product) error {
	if err := p.Navigate(); err != nil {
		return err
	}
	if err := p.page.GetByTestId("add-product-button").Click(); err != nil {
		return fmt.Errorf("could not open product form: %w", err)
	}
	if err := p.page.GetByTestId("new-product-title").WaitFor(); err != nil {
		return fmt.Errorf("product form did not render: %w", err)
	}
	if err := p.FillProductForm(product); err != nil {
		return err
	}
	return p.Save()
}

// Save submits the product form and waits for the listing.
func (p *ProductsPage) Save() error {
	if err := p.page.GetByTestId("save-button").Click(); err != nil {
		return fmt.Errorf("could not save product: %w", err)
	}
	if err := p.page.WaitForURL("**/products", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(p.cfg.Timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("save did not return to product listing: %w", err)
	}
	return nil
}

// SubmitForm clicks save without waiting for a redirect, for flows where
// the form is expected to re-render with validation errors.
func (p *ProductsPage) SubmitForm() error {
	if err := p.page.GetByTestId("save-button").Click(); err != nil {
		return fmt.Errorf("could not submit product form: %w", err)
	}
	return nil
}

// FieldError returns the inline validation message for a form field
// ("sku", "name", "price", "stock", "threshold").
func (p *ProductsPage) FieldError(field string) (string, error) {
	loc := p.page.GetByTestId(field + "-error")
	if err := loc.WaitFor(); err != nil {
		return "", fmt.Errorf("%s validation message did not appear: %w", field, err)
	}
	text, err := loc.TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read %s validation message: %w", field, err)
	}
	return text, nil
}

// SearchProduct types into the search box; the listing filters rows as
// the term changes.
func (p *ProductsPage) SearchProduct(term string) error {
	if err := p.page.GetByTestId("search-input").Fill(term); err != nil {
		return fmt.Errorf("could not type search term: %w", err)
	}
	return nil
}

// ClearSearch empties the search box, restoring the full listing.
func (p *ProductsPage) ClearSearch() error {
	return p.SearchProduct("")
}

// FilterByCategory selects a category in the filter dropdown. Passing
// "all" restores the full listing.
func (p *ProductsPage) FilterByCategory(category string) error {
	if _, err := p.page.GetByTestId("category-filter").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{category},
	}); err != nil {
		return fmt.Errorf("could not select category filter: %w", err)
	}
	return nil
}

// SortBy selects a sort key in the dropdown: "name", "price" or "stock".
func (p *ProductsPage) SortBy(key string) error {
	if _, err := p.page.GetByTestId("sort-select").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{key},
	}); err != nil {
		return fmt.Errorf("could not select sort key: %w", err)
	}
	return nil
}

// VisibleRows returns the product rows currently shown to the user; the
// listing filters hide non-matching rows instead of detaching them.
func (p *ProductsPage) VisibleRows() playwright.Locator {
	return p.page.Locator(`[data-testid^="product-row-"]:visible`)
}

// VisibleRowCount counts the rows the current search and filter leave
// on screen.
func (p *ProductsPage) VisibleRowCount() (int, error) {
	count, err := p.VisibleRows().Count()
	if err != nil {
		return 0, fmt.Errorf("could not count visible product rows: %w", err)
	}
	return count, nil
}

// FirstVisibleRow returns the topmost row the user can see.
func (p *ProductsPage) FirstVisibleRow() playwright.Locator {
	return p.VisibleRows().First()
}

// RowSKU reads the SKU a row carries in its data attribute.
func (p *ProductsPage) RowSKU(row playwright.Locator) (string, error) {
	sku, err := row.GetAttribute("data-sku")
	if err != nil {
		return "", fmt.Errorf("could not read row SKU: %w", err)
	}
	return sku, nil
}

// rowID extracts the product ID from a row's data-testid.
func (p *ProductsPage) rowID(row playwright.Locator) (string, error) {
	testID, err := row.GetAttribute("data-testid")
	if err != nil {
		return "", fmt.Errorf("could not read row testid: %w", err)
	}
	const prefix = "product-row-"
	if len(testID) <= len(prefix) {
		return "", fmt.Errorf("unexpected row testid %q", testID)
	}
	return testID[len(prefix):], nil
}

// EditFirstVisibleProduct opens the edit form for the topmost visible
// row, applies the update, and saves.
func (p *ProductsPage) EditFirstVisibleProduct(update ProductUpdate) error {
	row := p.FirstVisibleRow()
	if err := row.WaitFor(); err != nil {
		return fmt.Errorf("no visible product row to edit: %w", err)
	}
	id, err := p.rowID(row)
	if err != nil {
		return err
	}
	if err := p.page.GetByTestId("edit-product-" + id).Click(); err != nil {
		return fmt.Errorf("could not open edit form: %w", err)
	}
	if err := p.page.GetByTestId("edit-product-title").WaitFor(); err != nil {
		return fmt.Errorf("edit form did not render: %w", err)
	}
	if err := p.FillPartial(update); err != nil {
		return err
	}
	return p.Save()
}

// DeleteFirstVisibleProduct deletes the topmost visible row through the
// confirmation modal and waits for the modal to close.
func (p *ProductsPage) DeleteFirstVisibleProduct() error {
	row := p.FirstVisibleRow()
	if err := row.WaitFor(); err != nil {
		return fmt.Errorf("no visible product row to delete: %w", err)
	}
	id, err := p.rowID(row)
	if err != nil {
		return err
	}
	if err := p.page.GetByTestId("delete-product-" + id).Click(); err != nil {
		return fmt.Errorf("could not open delete confirmation: %w", err)
	}
	modal := p.page.GetByTestId("delete-modal")
	if err := modal.WaitFor(); err != nil {
		return fmt.Errorf("delete confirmation did not appear: %w", err)
	}
	if err := p.page.GetByTestId("confirm-delete-button").Click(); err != nil {
		return fmt.Errorf("could not confirm deletion: %w", err)
	}
	if err := modal.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateHidden,
	}); err != nil {
		return fmt.Errorf("delete confirmation did not close: %w", err)
	}
	return nil
}

// NoProductsMessageVisible reports whether the empty-state message is
// currently shown.
func (p *ProductsPage) NoProductsMessageVisible() (bool, error) {
	vis, err := p.page.GetByTestId("no-products-message").IsVisible()
	if err != nil {
		return false, fmt.Errorf("could not check empty-state message: %w", err)
	}
	return vis, nil
}
