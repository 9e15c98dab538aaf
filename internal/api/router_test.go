package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ims-io/ims/internal/config"
	"github.com/ims-io/ims/internal/logger"
	"github.com/ims-io/ims/internal/middleware"
	"github.com/ims-io/ims/internal/models"
	"github.com/ims-io/ims/internal/shared"
	"github.com/ims-io/ims/internal/store"
)

// newTestRouter builds a router against a fresh in-memory store and the
// real template set, so handler tests see the HTML the browser sees.
func newTestRouter(t *testing.T) (*Router, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App:  config.AppConfig{Env: "development", Name: "ims"},
		HTTP: config.HTTPConfig{Host: "127.0.0.1", Port: 0},
		JWT:  config.JWTConfig{Secret: "test-secret", ExpirationHours: 1},
	}
	st := store.NewMemoryStore()
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	renderer, err := shared.NewTemplateRenderer("../../templates")
	require.NoError(t, err)

	r, err := NewRouter(cfg, st, renderer, log)
	require.NoError(t, err)
	r.SetupRoutes(nil)
	return r, st
}

// login posts the demo admin credentials and returns the session cookie.
func login(t *testing.T, r *Router) *http.Cookie {
	t.Helper()
	form := url.Values{"email": {"admin@test.com"}, "password": {"Admin123!"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set on successful login")
	return nil
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestLoginFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("valid credentials set a cookie and redirect", func(t *testing.T) {
		cookie := login(t, r)
		assert.True(t, cookie.HttpOnly, "session cookie must be http-only")
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		form := url.Values{"email": {"admin@test.com"}, "password": {"wrong"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.GetEngine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies(), "failed login must not set a cookie")
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		w := httptest.NewRecorder()
		r.GetEngine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})
}

func TestAuthenticatedRoutesRequireSession(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/dashboard", "/products", "/inventory"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.GetEngine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code, "path %s", path)
		assert.Equal(t, "/login", w.Header().Get("Location"), "path %s", path)
	}
}

func TestAuthenticatedRoutesWithSession(t *testing.T) {
	r, _ := newTestRouter(t)
	cookie := login(t, r)

	for _, path := range []string{"/dashboard", "/products", "/inventory"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.GetEngine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}

func TestCreateProductValidation(t *testing.T) {
	r, st := newTestRouter(t)
	cookie := login(t, r)

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/products/new", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.GetEngine().ServeHTTP(w, req)
		return w
	}

	t.Run("valid product is created", func(t *testing.T) {
		w := post(url.Values{
			"sku":       {"API-001"},
			"name":      {"API Widget"},
			"price":     {"12.50"},
			"stock":     {"7"},
			"category":  {"Hardware"},
			"threshold": {"3"},
		})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/products", w.Header().Get("Location"))

		p, err := st.GetBySKU("API-001")
		require.NoError(t, err)
		assert.Equal(t, "API Widget", p.Name)
		assert.Equal(t, 12.50, p.Price)
		assert.Equal(t, 7, p.Stock)
	})

	t.Run("missing fields re-render the form", func(t *testing.T) {
		w := post(url.Values{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate SKU is rejected", func(t *testing.T) {
		w := post(url.Values{
			"sku":      {"API-001"},
			"name":     {"Duplicate"},
			"price":    {"5.00"},
			"stock":    {"1"},
			"category": {"Hardware"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, st.Search("API-001"), 1)
	})
}

func TestAdjustStockEndpoint(t *testing.T) {
	r, st := newTestRouter(t)
	cookie := login(t, r)

	laptop, err := st.GetBySKU("LAP-001") // stock 15
	require.NoError(t, err)

	post := func(id string, body any) *httptest.ResponseRecorder {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/products/"+id+"/adjust", bytes.NewReader(buf))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.GetEngine().ServeHTTP(w, req)
		return w
	}

	t.Run("positive delta", func(t *testing.T) {
		w := post(laptop.ID, gin.H{"adjustment": 5})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Product struct {
				Stock int `json:"stock"`
			} `json:"product"`
			LowStock      bool `json:"lowStock"`
			LowStockCount int  `json:"lowStockCount"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 20, resp.Product.Stock)
		assert.False(t, resp.LowStock)
		assert.Equal(t, 2, resp.LowStockCount)
	})

	t.Run("overdraw returns 400 and leaves stock alone", func(t *testing.T) {
		w := post(laptop.ID, gin.H{"adjustment": -1000})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Stock cannot be negative")

		p, err := st.Get(laptop.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, p.Stock)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		w := post("no-such-id", gin.H{"adjustment": 1})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/products/"+laptop.ID+"/adjust", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.GetEngine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Please enter a valid number")
	})
}

func newResetProbe() models.Product {
	return models.Product{
		SKU:               "PRB-001",
		Name:              "Reset Probe",
		Price:             1.00,
		Stock:             1,
		Category:          models.CategoryHardware,
		LowStockThreshold: 1,
	}
}

func TestResetInvalidatesSessions(t *testing.T) {
	r, st := newTestRouter(t)
	cookie := login(t, r)

	// Session works before the reset.
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Leave a trace the reset must wipe.
	_, err := st.Create(newResetProbe())
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/api/reset", nil)
	w = httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reset to defaults")

	// The old cookie no longer authenticates.
	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// And the dataset is back to the defaults.
	assert.Len(t, st.List(), 5)
	_, err = st.GetBySKU("PRB-001")
	assert.Error(t, err)
}
