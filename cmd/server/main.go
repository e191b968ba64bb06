package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/ohhell/internal/app"
	"github.com/KirkDiggler/ohhell/internal/config"
	"github.com/KirkDiggler/ohhell/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := logger.New("app")
	if cfg.IsDevelopment() {
		appLog.Warn("Running in development mode, login bypass is enabled")
	}

	// Stop serving on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	a, err := app.New(ctx, cfg, appLog)
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
	defer a.Close()

	if err := a.ListenAndServe(ctx, cfg.ListenAddr); err != nil {
		log.Printf("Server error: %v", err)
	}

	log.Println("Server has been shut down")
}
