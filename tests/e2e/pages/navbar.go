package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/ims-io/ims/tests/e2e/config"
)

// NavigationBar drives the top navigation shared by all authenticated
// screens.
type NavigationBar struct {
	base
}

// NewNavigationBar builds a navigation bar object bound to the page.
func NewNavigationBar(page playwright.Page, cfg *config.TestConfig) *NavigationBar {
	return &NavigationBar{base{page: page, cfg: cfg}}
}

func (n *NavigationBar) clickAndWait(testID, urlGlob string) error {
	if err := n.page.GetByTestId(testID).Click(); err != nil {
		return fmt.Errorf("could not click %s: %w", testID, err)
	}
	if err := n.page.WaitForURL(urlGlob, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(n.cfg.Timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("navigation via %s did not reach %s: %w", testID, urlGlob, err)
	}
	return nil
}

// GoToDashboard navigates to the dashboard via the navbar link.
func (n *NavigationBar) GoToDashboard() error {
	return n.clickAndWait("nav-dashboard", "**/dashboard")
}

// GoToProducts navigates to the product listing via the navbar link.
func (n *NavigationBar) GoToProducts() error {
	return n.clickAndWait("nav-products", "**/products")
}

// GoToInventory navigates to the inventory screen via the navbar link.
func (n *NavigationBar) GoToInventory() error {
	return n.clickAndWait("nav-inventory", "**/inventory")
}

// UserName returns the display name rendered in the navbar.
func (n *NavigationBar) UserName() (string, error) {
	text, err := n.page.GetByTestId("user-name").TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read navbar user name: %w", err)
	}
	return text, nil
}

// Logout ends the session via the navbar and waits for the login screen.
func (n *NavigationBar) Logout() error {
	if err := n.page.GetByTestId("logout-button").Click(); err != nil {
		return fmt.Errorf("could not click logout: %w", err)
	}
	if err := n.page.WaitForURL("**/login", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(n.cfg.Timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("logout did not redirect to login: %w", err)
	}
	return nil
}
