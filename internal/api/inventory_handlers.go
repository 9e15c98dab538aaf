package api

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/ims-io/ims/internal/middleware"
	"github.com/ims-io/ims/internal/store"
)

func (r *Router) ShowInventory(c *gin.Context) {
	products := r.store.List()
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	r.renderer.HTML(c, http.StatusOK, "inventory.html", gin.H{
		"user":          middleware.CurrentUser(c),
		"products":      products,
		"lowStockCount": len(r.store.LowStock()),
	})
}

type adjustRequest struct {
	Adjustment int `json:"adjustment"`
}

// AdjustStock applies a signed delta to one product's stock. The inventory
// page calls this from the adjustment modal and patches the row in place,
// so the response carries everything the client needs to re-render.
func (r *Router) AdjustStock(c *gin.Context) {
	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid number"})
		return
	}

	p, err := r.store.AdjustStock(c.Param("id"), req.Adjustment)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNegativeStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			r.log.Error().Err(err).Msg("stock adjustment failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Adjustment failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":       p,
		"lowStock":      p.IsLowStock(),
		"lowStockCount": len(r.store.LowStock()),
	})
}
