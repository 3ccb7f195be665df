package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/liyu-tw/coursepick/internal/catalog"
	"github.com/liyu-tw/coursepick/internal/engine"
	"github.com/liyu-tw/coursepick/pkg/config"
	"github.com/liyu-tw/coursepick/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &server{
		catalog: catalog.New(nil, logr),
		engine: engine.New(
			engine.WithLogger(logr),
			engine.WithWorkers(cfg.Engine.Workers),
		),
		cfg:    cfg,
		logger: logr,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(logr))
	s.routes(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
