package main

import (
	"context"
	"log"

	"github.com/martinsuhendra/manta-sub002/internal/bootstrap"
	"github.com/martinsuhendra/manta-sub002/internal/config"
	"github.com/martinsuhendra/manta-sub002/pkg/database"
)

// Runs the freeze completion sweep once and exits. Meant to be invoked
// by cron or a container scheduler.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	res, err := container.FreezeService.Sweep(context.Background())
	if err != nil {
		log.Fatalf("Error: sweep failed: %v", err)
	}

	log.Printf("Sweep completed: %d freeze(s) finished", res.Completed)
}
