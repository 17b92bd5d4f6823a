package main

import (
	"context"
	"log"

	"github.com/adeyemio/NaijaPulse/internal/app"
	"github.com/adeyemio/NaijaPulse/internal/config"
)

// One-shot fetch: pull every source once and overwrite the news
// snapshot. Suited to CI schedules and manual runs.
func main() {
	cfg := config.Load()

	pipeline, _, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("init pipeline failed: %v", err)
	}

	if err := pipeline.Collect(context.Background()); err != nil {
		log.Fatalf("collect failed: %v", err)
	}
}
