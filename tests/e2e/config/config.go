// Package config resolves the E2E suite's runtime settings from the
// environment, with an optional .env file for local runs.
package config

import (
	"bufio"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// TestConfig holds all configuration for E2E tests.
type TestConfig struct {
	BaseURL       string
	Timeout       time.Duration
	Headless      bool
	SlowMo        int
	Screenshots   bool
	Videos        bool
	AdminEmail    string
	AdminPassword string
}

var loadOnce sync.Once

// loadDotEnv loads simple KEY=VALUE lines from .env if present.
// Existing environment variables take precedence and are not overwritten.
func loadDotEnv() {
	f, err := os.Open(".env")
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.Index(line, "=")
		if i <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:i])
		val := strings.TrimSpace(line[i+1:])
		if key == "" || val == "" {
			continue
		}
		if (strings.HasPrefix(val, `"`) && strings.HasSuffix(val, `"`)) ||
			(strings.HasPrefix(val, "'") && strings.HasSuffix(val, "'")) {
			val = val[1 : len(val)-1]
		}
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, val)
		}
	}
}

// GetConfig returns the test configuration from environment variables.
func GetConfig() *TestConfig {
	loadOnce.Do(loadDotEnv)

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@test.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	slowMo := 0
	if v := os.Getenv("SLOW_MO"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			slowMo = n
		}
	}

	return &TestConfig{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		Timeout:       30 * time.Second,
		Headless:      os.Getenv("HEADLESS") != "false",
		SlowMo:        slowMo,
		Screenshots:   os.Getenv("SCREENSHOTS") != "false",
		Videos:        os.Getenv("VIDEOS") == "true",
		AdminEmail:    email,
		AdminPassword: password,
	}
}

// Reachable probes the application with a TCP dial and a quick HTTP check,
// so tests can skip instead of hanging when no server is running.
func (c *TestConfig) Reachable() bool {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return false
	}
	host := u.Host
	if !strings.Contains(host, ":") {
		host += ":80"
	}
	d := net.Dialer{Timeout: 250 * time.Millisecond}
	conn, err := d.Dial("tcp", host)
	if err != nil {
		return false
	}
	_ = conn.Close()

	client := &http.Client{Timeout: 800 * time.Millisecond}
	for _, path := range []string{"/healthz", "/login"} {
		resp, err := client.Get(c.BaseURL + path)
		if err == nil {
			_ = resp.Body.Close()
			return true
		}
	}
	return false
}
