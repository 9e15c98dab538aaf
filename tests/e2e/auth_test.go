package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ims-io/ims/tests/e2e/fixtures"
)

func TestAuthenticationFlow(t *testing.T) {
	session := fixtures.NewSession(t)
	login := session.Pages.OnLoginPage()

	t.Run("valid login lands on dashboard", func(t *testing.T) {
		// NewSession already logged in; verify where we are.
		url := session.Browser.Page.URL()
		assert.Contains(t, url, "/dashboard", "should be on dashboard after login")

		name, err := session.Pages.NavigationBar().UserName()
		require.NoError(t, err)
		assert.Contains(t, name, "Admin User", "navbar should show the logged-in user")
	})

	t.Run("logout returns to login and locks the app", func(t *testing.T) {
		require.NoError(t, session.Pages.Logout())

		// Authenticated routes must bounce back to login now.
		for _, path := range []string{"/dashboard", "/products", "/inventory"} {
			require.NoError(t, session.Browser.NavigateTo(path))
			url := session.Browser.Page.URL()
			assert.Contains(t, url, "/login", "route %s should redirect to login when logged out", path)
		}
	})

	t.Run("invalid credentials show an error", func(t *testing.T) {
		require.NoError(t, login.Navigate())
		require.NoError(t, login.Login("admin@test.com", "definitely-wrong"))

		msg, err := login.ErrorMessage()
		require.NoError(t, err)
		assert.Equal(t, "Invalid email or password", strings.TrimSpace(msg))

		url := session.Browser.Page.URL()
		assert.Contains(t, url, "/login", "failed login should stay on login page")
	})

	t.Run("unknown account shows the same error", func(t *testing.T) {
		require.NoError(t, login.Navigate())
		require.NoError(t, login.Login("nobody@test.com", "Whatever123!"))

		msg, err := login.ErrorMessage()
		require.NoError(t, err)
		assert.Equal(t, "Invalid email or password", strings.TrimSpace(msg))
	})

	t.Run("password visibility toggle", func(t *testing.T) {
		require.NoError(t, login.Navigate())

		typ, err := login.PasswordFieldType()
		require.NoError(t, err)
		assert.Equal(t, "password", typ, "password should be masked initially")

		require.NoError(t, login.TogglePasswordVisibility())
		typ, err = login.PasswordFieldType()
		require.NoError(t, err)
		assert.Equal(t, "text", typ, "password should be visible after toggle")

		require.NoError(t, login.TogglePasswordVisibility())
		typ, err = login.PasswordFieldType()
		require.NoError(t, err)
		assert.Equal(t, "password", typ, "password should be masked again")
	})

	t.Run("log back in after failures", func(t *testing.T) {
		require.NoError(t, login.Navigate())
		require.NoError(t, login.LoginExpectingSuccess(session.Config.AdminEmail, session.Config.AdminPassword))
	})
}
