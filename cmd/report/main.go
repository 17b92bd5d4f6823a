package main

import (
	"log"

	"github.com/adeyemio/NaijaPulse/internal/app"
	"github.com/adeyemio/NaijaPulse/internal/config"
)

// One-shot rendering: weekly report plus daily digest from the latest
// processed snapshots.
func main() {
	cfg := config.Load()

	pipeline, _, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("init pipeline failed: %v", err)
	}

	if err := pipeline.Report(); err != nil {
		log.Fatalf("report failed: %v", err)
	}
}
