package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/ims-io/ims/tests/e2e/config"
)

// LoginPage drives the /login screen.
type LoginPage struct {
	base
}

// NewLoginPage builds a login page object bound to the given page handle.
func NewLoginPage(page playwright.Page, cfg *config.TestConfig) *LoginPage {
	return &LoginPage{base{page: page, cfg: cfg}}
}

// Navigate opens the login screen and waits for the form to be usable.
func (p *LoginPage) Navigate() error {
	if _, err := p.page.Goto(p.cfg.BaseURL + "/login"); err != nil {
		return fmt.Errorf("could not open login page: %w", err)
	}
	if err := p.page.GetByTestId("email-input").WaitFor(); err != nil {
		return fmt.Errorf("login form did not appear: %w", err)
	}
	return nil
}

// Login submits credentials. It does not assert the outcome; callers
// decide whether a dashboard redirect or an error banner is expected.
func (p *LoginPage) Login(email, password string) error {
	if err := p.page.GetByTestId("email-input").Fill(email); err != nil {
		return fmt.Errorf("could not fill email: %w", err)
	}
	if err := p.page.GetByTestId("password-input").Fill(password); err != nil {
		return fmt.Errorf("could not fill password: %w", err)
	}
	if err := p.page.GetByTestId("login-button").Click(); err != nil {
		return fmt.Errorf("could not submit login form: %w", err)
	}
	return nil
}

// LoginExpectingSuccess submits credentials and waits for the dashboard.
func (p *LoginPage) LoginExpectingSuccess(email, password string) error {
	if err := p.Login(email, password); err != nil {
		return err
	}
	if err := p.page.WaitForURL("**/dashboard", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(p.cfg.Timeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("login did not redirect to dashboard: %w", err)
	}
	return nil
}

// ErrorMessage waits for the inline login error and returns its text.
func (p *LoginPage) ErrorMessage() (string, error) {
	banner := p.page.GetByTestId("error-message")
	if err := banner.WaitFor(); err != nil {
		return "", fmt.Errorf("login error message did not appear: %w", err)
	}
	text, err := banner.TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read login error message: %w", err)
	}
	return text, nil
}

// TogglePasswordVisibility clicks the show/hide control next to the
// password field.
func (p *LoginPage) TogglePasswordVisibility() error {
	if err := p.page.GetByTestId("password-toggle").Click(); err != nil {
		return fmt.Errorf("could not toggle password visibility: %w", err)
	}
	return nil
}

// PasswordFieldType reports the current type attribute of the password
// input ("password" or "text").
func (p *LoginPage) PasswordFieldType() (string, error) {
	typ, err := p.page.GetByTestId("password-input").GetAttribute("type")
	if err != nil {
		return "", fmt.Errorf("could not read password input type: %w", err)
	}
	return typ, nil
}
