// Package api wires the demo application's HTTP surface: HTML screens
// rendered with pongo2, the stock-adjustment JSON endpoint and the reset
// side-channel used by the E2E suite.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ims-io/ims/internal/auth"
	"github.com/ims-io/ims/internal/config"
	"github.com/ims-io/ims/internal/logger"
	"github.com/ims-io/ims/internal/middleware"
	"github.com/ims-io/ims/internal/shared"
	"github.com/ims-io/ims/internal/store"
)

type Router struct {
	engine         *gin.Engine
	store          store.Store
	creds          *auth.CredentialTable
	jwtManager     *auth.JWTManager
	authMiddleware *middleware.AuthMiddleware
	renderer       *shared.TemplateRenderer
	log            *logger.Logger
}

func NewRouter(cfg *config.Config, st store.Store, renderer *shared.TemplateRenderer, log *logger.Logger) (*Router, error) {
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpirationHours)*time.Hour)

	creds, err := auth.NewCredentialTable()
	if err != nil {
		return nil, err
	}

	return &Router{
		engine:         gin.New(),
		store:          st,
		creds:          creds,
		jwtManager:     jwtManager,
		authMiddleware: middleware.NewAuthMiddleware(jwtManager, st),
		renderer:       renderer,
		log:            log,
	}, nil
}

func (r *Router) SetupRoutes(metrics *middleware.HTTPMetrics) {
	r.engine.Use(gin.Recovery())
	if metrics != nil {
		r.engine.Use(metrics.Handler())
	}

	r.engine.GET("/healthz", r.healthCheck)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Unauthenticated surface
	r.engine.GET("/login", r.ShowLogin)
	r.engine.POST("/login", r.HandleLogin)
	r.engine.GET("/logout", r.Logout)
	r.engine.POST("/logout", r.Logout)
	r.engine.POST("/api/reset", r.ResetData)

	r.engine.GET("/", r.Root)

	// Authenticated screens
	authed := r.engine.Group("/")
	authed.Use(r.authMiddleware.RequireAuth())
	{
		authed.GET("/dashboard", r.ShowDashboard)
		authed.GET("/products", r.ListProducts)
		authed.GET("/products/new", r.ShowNewProductForm)
		authed.POST("/products/new", r.CreateProduct)
		authed.GET("/products/:id", r.ShowEditProductForm)
		authed.POST("/products/:id", r.UpdateProduct)
		authed.POST("/products/:id/delete", r.DeleteProduct)
		authed.GET("/inventory", r.ShowInventory)
		authed.POST("/api/products/:id/adjust", r.AdjustStock)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Root sends the visitor to the dashboard; RequireAuth bounces them to
// /login from there if no session exists.
func (r *Router) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
