package main

import (
	"log"

	"github.com/MDastan2005/Auto-opener/internal/config"
	"github.com/MDastan2005/Auto-opener/internal/logger"
)

const (
	AppName      = "Auto Opener"
	AppID        = "com.mdastan.autoopener"
	AppVersion   = "1.0.0"
	WindowWidth  = 420
	WindowHeight = 560
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.NewConsoleLogger(cfg.LogLevel)

	application, err := NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}
