// Package main - Entry point for the rental-pricing API server
package main

import (
	"flag"

	"go.uber.org/zap"

	"rental-pricing/api"
	"rental-pricing/core/engine"
	"rental-pricing/internal/config"
	"rental-pricing/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "server address (overrides config)")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("failed to load config", zap.Error(err))
		}
		config.Set(loaded)
		cfg = loaded
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("failed to initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	eng := engine.New(engine.Config{
		BaseCurrency:  cfg.Pricing.DefaultCurrency,
		DefaultLocale: cfg.Pricing.DefaultLocale,
	})

	server := api.NewServer(version, eng)

	logging.Info("starting rental-pricing server",
		zap.String("version", version),
		zap.String("addr", listenAddr))

	if err := server.ListenAndServe(listenAddr); err != nil {
		logging.Fatal("server exited", zap.Error(err))
	}
}
