package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/adeyemio/NaijaPulse/internal/api"
	"github.com/adeyemio/NaijaPulse/internal/app"
	"github.com/adeyemio/NaijaPulse/internal/config"
	"github.com/adeyemio/NaijaPulse/internal/scheduler"
)

// Long-running mode: cron-driven pipeline plus the HTTP API serving
// the latest snapshots.
func main() {
	cfg := config.Load()

	pipeline, store, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("init pipeline failed: %v", err)
	}

	s, err := scheduler.New(cfg.CronSpec, pipeline)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()

	r := gin.Default()
	apiServer := api.NewServer(store, s)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
