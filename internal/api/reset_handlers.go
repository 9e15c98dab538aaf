package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ims-io/ims/internal/middleware"
)

// ResetData is the test-automation side-channel: it restores the default
// dataset and invalidates every outstanding session. Callers are expected
// to clear client-side storage and reload afterwards.
func (r *Router) ResetData(c *gin.Context) {
	r.store.Reset()
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	r.log.Info().Msg("application data reset to defaults")
	c.JSON(http.StatusOK, gin.H{
		"message": "Application data reset to defaults",
	})
}
