// Package fixtures wires browser setup, data reset and authentication
// into ready-to-use test sessions, with cleanup registered on the test
// so teardown runs in reverse order of setup.
package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ims-io/ims/tests/e2e/config"
	"github.com/ims-io/ims/tests/e2e/harness"
	"github.com/ims-io/ims/tests/e2e/pages"
)

// Session is a logged-in browser against a freshly reset application.
type Session struct {
	Browser *harness.Browser
	Pages   *pages.Manager
	Config  *config.TestConfig
}

// NewSession resets the application data, opens a browser and logs in as
// the admin user. The reset happens before login because resetting
// invalidates every existing session. Tests that reset mid-run must log
// in again themselves.
//
// The whole test is skipped when the application is not reachable, so
// the suite can live in the same module as unit tests without failing
// CI runs that do not start the server.
func NewSession(t *testing.T) *Session {
	t.Helper()

	cfg := config.GetConfig()
	if !cfg.Reachable() {
		t.Skipf("application not reachable at %s, skipping browser test", cfg.BaseURL)
	}

	browser := harness.NewBrowser(t)
	require.NoError(t, browser.Setup(), "browser setup failed")
	t.Cleanup(browser.TearDown)

	mgr := pages.NewManager(browser.Page, cfg)

	login := mgr.OnLoginPage()
	require.NoError(t, login.ResetApplicationData(), "data reset failed")
	require.NoError(t, login.Navigate(), "could not open login page")
	require.NoError(t, login.LoginExpectingSuccess(cfg.AdminEmail, cfg.AdminPassword), "admin login failed")

	return &Session{Browser: browser, Pages: mgr, Config: cfg}
}

// ProductFactory creates products through the UI and deletes them again
// when the test finishes, keeping runs independent even when the suite
// shares one server.
type ProductFactory struct {
	t       *testing.T
	session *Session
	skus    []string
}

// NewProductFactory builds a factory whose cleanup is registered on the
// test. Cleanup runs before the browser teardown registered by
// NewSession, so the page is still alive while products are removed.
func NewProductFactory(t *testing.T, session *Session) *ProductFactory {
	t.Helper()
	f := &ProductFactory{t: t, session: session}
	t.Cleanup(f.cleanup)
	return f
}

// Create generates a product, applies any overrides, creates it through
// the UI and tracks its SKU for cleanup.
func (f *ProductFactory) Create(overrides ...func(*pages.Product)) pages.Product {
	f.t.Helper()

	pp := f.session.Pages.OnProductsPage()
	product := pp.GenerateTestProduct()
	for _, o := range overrides {
		o(&product)
	}
	require.NoError(f.t, pp.CreateProduct(product), "could not create product %s", product.SKU)
	f.skus = append(f.skus, product.SKU)
	return product
}

// Track registers an externally created SKU for cleanup.
func (f *ProductFactory) Track(sku string) {
	f.skus = append(f.skus, sku)
}

// Untrack removes a SKU from the cleanup list, for tests that delete
// the product themselves.
func (f *ProductFactory) Untrack(sku string) {
	for i, s := range f.skus {
		if s == sku {
			f.skus = append(f.skus[:i], f.skus[i+1:]...)
			return
		}
	}
}

// cleanup deletes every tracked product through the UI. Failures are
// logged, not fatal: the test already has its verdict, and a reset at
// the start of the next session clears leftovers anyway.
func (f *ProductFactory) cleanup() {
	pp := f.session.Pages.OnProductsPage()
	for i := len(f.skus) - 1; i >= 0; i-- {
		sku := f.skus[i]
		if err := pp.Navigate(); err != nil {
			f.t.Logf("cleanup: could not open products page for %s: %v", sku, err)
			continue
		}
		if err := pp.SearchProduct(sku); err != nil {
			f.t.Logf("cleanup: could not search for %s: %v", sku, err)
			continue
		}
		count, err := pp.VisibleRowCount()
		if err != nil || count == 0 {
			continue
		}
		if err := pp.DeleteFirstVisibleProduct(); err != nil {
			f.t.Logf("cleanup: could not delete %s: %v", sku, err)
		}
	}
}
