package main

import (
	"log"

	"github.com/adeyemio/NaijaPulse/internal/app"
	"github.com/adeyemio/NaijaPulse/internal/config"
)

// One-shot processing: derive analytics, trends and source stats from
// the current news snapshot.
func main() {
	cfg := config.Load()

	pipeline, _, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("init pipeline failed: %v", err)
	}

	if err := pipeline.Process(); err != nil {
		log.Fatalf("process failed: %v", err)
	}
}
