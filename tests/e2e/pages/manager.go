package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/ims-io/ims/tests/e2e/config"
)

// Manager hands out page objects bound to a single browser page. Objects
// are created lazily and cached, so tests can grab the same screen
// repeatedly without rebuilding locators.
type Manager struct {
	page playwright.Page
	cfg  *config.TestConfig

	login     *LoginPage
	products  *ProductsPage
	inventory *InventoryPage
	dashboard *DashboardPage
	navbar    *NavigationBar
}

// NewManager builds a page-object manager for the given page handle.
func NewManager(page playwright.Page, cfg *config.TestConfig) *Manager {
	return &Manager{page: page, cfg: cfg}
}

// OnLoginPage returns the login page object.
func (m *Manager) OnLoginPage() *LoginPage {
	if m.login == nil {
		m.login = NewLoginPage(m.page, m.cfg)
	}
	return m.login
}

// OnProductsPage returns the products page object.
func (m *Manager) OnProductsPage() *ProductsPage {
	if m.products == nil {
		m.products = NewProductsPage(m.page, m.cfg)
	}
	return m.products
}

// OnInventoryPage returns the inventory page object.
func (m *Manager) OnInventoryPage() *InventoryPage {
	if m.inventory == nil {
		m.inventory = NewInventoryPage(m.page, m.cfg)
	}
	return m.inventory
}

// OnDashboardPage returns the dashboard page object.
func (m *Manager) OnDashboardPage() *DashboardPage {
	if m.dashboard == nil {
		m.dashboard = NewDashboardPage(m.page, m.cfg)
	}
	return m.dashboard
}

// NavigationBar returns the shared navigation bar object.
func (m *Manager) NavigationBar() *NavigationBar {
	if m.navbar == nil {
		m.navbar = NewNavigationBar(m.page, m.cfg)
	}
	return m.navbar
}

// Logout ends the session through the navbar and waits for the login
// form, leaving the browser ready for a fresh login.
func (m *Manager) Logout() error {
	if err := m.NavigationBar().Logout(); err != nil {
		return err
	}
	if err := m.page.GetByTestId("login-button").WaitFor(); err != nil {
		return fmt.Errorf("login form did not appear after logout: %w", err)
	}
	return nil
}
