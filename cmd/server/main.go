package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ims-io/ims/internal/api"
	"github.com/ims-io/ims/internal/config"
	"github.com/ims-io/ims/internal/logger"
	"github.com/ims-io/ims/internal/middleware"
	"github.com/ims-io/ims/internal/shared"
	"github.com/ims-io/ims/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: os.Getenv("LOG_LEVEL"),
	})

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	templateDir := os.Getenv("TEMPLATE_DIR")
	if templateDir == "" {
		templateDir = "templates"
	}
	renderer, err := shared.NewTemplateRenderer(templateDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", templateDir).Msg("failed to load templates")
	}

	st := store.NewMemoryStore()

	router, err := api.NewRouter(cfg, st, renderer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}
	router.SetupRoutes(middleware.NewHTTPMetrics())

	addr := cfg.HTTP.Addr()
	log.Info().Str("addr", addr).Str("env", cfg.App.Env).Msg("starting ims server")
	if err := router.GetEngine().Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
