package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Biholo/planete-xplorer/internal/config"
	httpx "github.com/Biholo/planete-xplorer/internal/http"
	"github.com/Biholo/planete-xplorer/internal/http/handlers"
)

// Run wires the application and serves HTTP until the listener fails.
func Run(cfg *config.Config, log *logrus.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, log)
	if err != nil {
		return err
	}
	defer c.Close()

	purger := startTokenPurge(c, log)
	defer purger.Stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	router := httpx.NewRouter(httpx.RouterDeps{
		Auth:        handlers.NewAuthHandler(c.AuthSvc, log),
		Users:       handlers.NewUserHandler(c.UserRepo, log),
		Categories:  handlers.NewCategoryHandler(c.CategoryRepo, log),
		Systems:     handlers.NewSystemHandler(c.SystemRepo, log),
		Objects:     handlers.NewObjectHandler(c.ObjectRepo, c.CategoryRepo, c.SystemRepo, log),
		Signer:      c.TokenSvc,
		Limiter:     c.Limiter,
		CORSOrigins: cfg.CORSOrigins,
		Registry:    registry,
		Log:         log,
	})

	addr := ":" + cfg.Port
	log.WithField("addr", addr).Info("http server listening")
	return router.Run(addr)
}

// startTokenPurge schedules the hourly sweep of expired token rows. Tokens
// are never revoked, only left to expire, so without the sweep the table
// grows without bound.
func startTokenPurge(c *Container, log *logrus.Logger) *cron.Cron {
	scheduler := cron.New()
	_, err := scheduler.AddFunc("@hourly", func() {
		removed, err := c.TokenRepo.DeleteExpired(context.Background())
		if err != nil {
			log.WithField("error", err.Error()).Warn("expired token purge failed")
			return
		}
		if removed > 0 {
			log.WithField("removed", removed).Info("purged expired tokens")
		}
	})
	if err != nil {
		log.WithField("error", err.Error()).Warn("could not schedule token purge")
	}
	scheduler.Start()
	return scheduler
}
