package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"porter/cmd"
	"porter/internal/adapters/out/seed"
	"porter/internal/pkg/clock"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err = run(configs); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(configs cmd.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := cmd.NewLogger(os.Stderr, configs.ServiceName, configs.LogLevel)

	app, err := cmd.NewCompositionRoot(configs, clock.System{}, logger)
	if err != nil {
		return fmt.Errorf("compose application: %w", err)
	}

	if configs.SeedEnabled {
		fixture, err := seed.Load(configs.SeedFile)
		if err != nil {
			return err
		}
		if err = app.CreateSeedLoader().Apply(ctx, fixture); err != nil {
			return err
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	logger.InfoContext(ctx, "Driver console ready")
	err = app.CreateConsole(os.Stdout).Run(ctx, os.Stdin)
	if errors.Is(err, context.Canceled) {
		logger.Info("Shutting down")
		return nil
	}
	return err
}
