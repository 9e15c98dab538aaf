package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ims-io/ims/internal/auth"
	"github.com/ims-io/ims/internal/store"
)

const SessionCookie = "auth_token"

const claimsKey = "session_claims"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	store      store.Store
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, st store.Store) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, store: st}
}

// RequireAuth gates HTML routes: requests without a live session are
// redirected to the login screen. A session minted before the last data
// reset counts as dead.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ValidateToken(token, m.store.Epoch())
		if err != nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentUser returns the session claims set by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
