package e2e

import (
	"testing"

	"github.com/ims-io/ims/tests/e2e/config"
)

// TestSetup reports how the E2E environment is configured so failures
// elsewhere in the suite are easy to interpret.
func TestSetup(t *testing.T) {
	cfg := config.GetConfig()

	t.Logf("BASE_URL: %s", cfg.BaseURL)
	t.Logf("ADMIN_EMAIL: %s", cfg.AdminEmail)
	t.Logf("HEADLESS: %v", cfg.Headless)
	t.Logf("TIMEOUT: %s", cfg.Timeout)

	if !cfg.Reachable() {
		t.Skipf("application not reachable at %s, browser tests will be skipped", cfg.BaseURL)
	}
	t.Log("application is reachable, browser tests will run")
}
