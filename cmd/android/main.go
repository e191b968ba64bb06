// Command android is the entry point embedded in the Android shell. It fills
// in the settings the device has not provided and serves on the loopback
// interface only.
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
	// The shell starts us in the app's files directory
	if dir := os.Getenv("OHHELL_HOME"); dir != "" {
		if err := os.Chdir(dir); err != nil {
			log.Fatalf("Failed to enter %s: %v", dir, err)
		}
	}

	cfg, applied, err := config.LoadAndroid(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New("android")
	appLog.Info("Applied Android defaults", "keys", applied)

	if err := cfg.Validate(); err != nil {
		// A phone without credentials still gets the local pages
		appLog.Warn("Configuration incomplete", logger.Err(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	a, err := app.New(ctx, cfg, appLog)
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
	defer a.Close()

	if err := a.ListenAndServe(ctx, config.AndroidListenAddr); err != nil {
		log.Printf("Server error: %v", err)
	}
}
