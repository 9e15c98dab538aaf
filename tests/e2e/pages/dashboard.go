package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/ims-io/ims/tests/e2e/config"
)

// DashboardPage drives the /dashboard summary screen.
type DashboardPage struct {
	base
}

// NewDashboardPage builds a dashboard page object bound to the page.
func NewDashboardPage(page playwright.Page, cfg *config.TestConfig) *DashboardPage {
	return &DashboardPage{base{page: page, cfg: cfg}}
}

// Navigate opens the dashboard and waits for it to render.
func (p *DashboardPage) Navigate() error {
	if _, err := p.page.Goto(p.cfg.BaseURL + "/dashboard"); err != nil {
		return fmt.Errorf("could not open dashboard: %w", err)
	}
	if err := p.page.GetByTestId("dashboard-title").WaitFor(); err != nil {
		return fmt.Errorf("dashboard did not render: %w", err)
	}
	return nil
}

func (p *DashboardPage) statInt(testID string) (int, error) {
	text, err := p.page.GetByTestId(testID).TextContent()
	if err != nil {
		return 0, fmt.Errorf("could not read %s: %w", testID, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%s is not a number: %w", testID, err)
	}
	return n, nil
}

// TotalProducts reads the total-products stat card.
func (p *DashboardPage) TotalProducts() (int, error) {
	return p.statInt("stat-total-products")
}

// LowStockItems reads the low-stock stat card.
func (p *DashboardPage) LowStockItems() (int, error) {
	return p.statInt("stat-low-stock")
}

// TotalValue reads the formatted inventory value, e.g. "$21,344.79".
func (p *DashboardPage) TotalValue() (string, error) {
	text, err := p.page.GetByTestId("stat-total-value").TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read total value: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ActivityList returns the recent-activity list locator.
func (p *DashboardPage) ActivityList() playwright.Locator {
	return p.page.GetByTestId("activity-list")
}
