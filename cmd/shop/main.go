// cmd/shop/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/petshop-catalog/internal/config"
	"github.com/your-org/petshop-catalog/internal/domain/cart"
	"github.com/your-org/petshop-catalog/internal/domain/catalog"
	"github.com/your-org/petshop-catalog/internal/domain/checkout"
	"github.com/your-org/petshop-catalog/internal/interfaces/console"
	"github.com/your-org/petshop-catalog/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg)
	appLogger.WithFields(logrus.Fields{
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
		"env":     cfg.App.Environment,
	}).Info("Starting shop")

	// Build the catalog from sample data
	seed := cfg.Catalog.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	appLogger.WithField("seed", seed).Debug("Generating sample inventory")

	shopCatalog := catalog.New(
		catalog.WithLogger(appLogger.WithField("component", "catalog")),
		catalog.WithLowStockThreshold(cfg.Catalog.LowStockThreshold),
	)
	shopCatalog.Initialize(map[catalog.Category]int{
		catalog.Food:        cfg.Catalog.FoodCount,
		catalog.Utilities:   cfg.Catalog.UtilitiesCount,
		catalog.Accessories: cfg.Catalog.AccessoriesCount,
		catalog.Healthcare:  cfg.Catalog.HealthcareCount,
	}, catalog.NewGenerator(seed))

	shopCart := cart.New(shopCatalog, cart.WithLogger(appLogger.WithField("component", "cart")))
	workflow := checkout.New(shopCart, shopCatalog, checkout.WithLogger(appLogger.WithField("component", "checkout")))

	shell := console.NewShell(cfg, shopCatalog, shopCart, workflow,
		appLogger.WithField("component", "console"), os.Stdin, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run the shell in a goroutine
	done := make(chan error, 1)
	go func() {
		done <- shell.Run(ctx)
	}()

	// Wait for the shell to finish or an interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			appLogger.WithError(err).Error("Shell stopped with error")
			os.Exit(1)
		}
	case sig := <-quit:
		appLogger.WithField("signal", sig.String()).Info("Shutting down gracefully...")
		cancel()

		// The shell notices cancellation on its next input line
		select {
		case <-done:
		case <-time.After(cfg.ShutdownTimeout):
			appLogger.Warn("Shell did not stop before the shutdown timeout")
		}
	}

	appLogger.WithField("movements", len(shopCatalog.Movements())).Info("Shop closed")
}
