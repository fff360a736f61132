package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "fieldservice/docs"
	"fieldservice/internal/adapter/http/routes"
	"fieldservice/internal/app"
	"fieldservice/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Field Service API
// @version         1.0
// @description     Customers, estimates, jobs and invoices with offline-tolerant caching and derived pipeline stages.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closeLog := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer a.Close()

	if err := routes.Run(ctx, a, logger); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}
