package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ims-io/ims/internal/middleware"
)

func (r *Router) ShowDashboard(c *gin.Context) {
	products := r.store.List()

	var totalValue float64
	for _, p := range products {
		totalValue += p.Price * float64(p.Stock)
	}

	r.renderer.HTML(c, http.StatusOK, "dashboard.html", gin.H{
		"user":          middleware.CurrentUser(c),
		"totalProducts": len(products),
		"lowStockItems": len(r.store.LowStock()),
		"totalValue":    totalValue,
		"activity":      r.store.RecentActivity(3),
	})
}
