package main

import (
	"log"

	"ems/internal/app/server"
	"ems/internal/platform/config"
)

func main() {
	cfg := config.Load()

	app, err := server.New(cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer func() { _ = app.Close() }()

	if err := app.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
