package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Rayxworld/Vegil/internal/config"
	"github.com/Rayxworld/Vegil/internal/heuristics"
	"github.com/Rayxworld/Vegil/internal/scanner"
	"github.com/Rayxworld/Vegil/internal/server"
	"github.com/Rayxworld/Vegil/internal/subscription"
	"github.com/Rayxworld/Vegil/internal/telemetry"
)

func main() {
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides config)")
	configPath := flag.String("config", "vegil.yaml", "Path to Vegil config file")
	flag.Parse()

	// Credentials come from the environment; .env is a dev convenience.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	addr := cfg.Server.Addr
	if *addrFlag != "" {
		addr = *addrFlag
	}

	ctx := context.Background()

	tel, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:  cfg.Telemetry.Enabled,
		Endpoint: cfg.Telemetry.Endpoint,
		Protocol: cfg.Telemetry.Protocol,
		Service:  "vegild",
	})
	if err != nil {
		log.Fatalf("failed to set up telemetry: %v", err)
	}
	defer tel.Shutdown(ctx)

	minFlow, err := subscription.MinFlowRate(cfg.Subscription.MinFlowRate)
	if err != nil {
		log.Fatalf("invalid min_flow_rate: %v", err)
	}
	subs := subscription.New(cfg.Subscription.SubgraphURLs, minFlow,
		time.Duration(cfg.Subscription.TimeoutSeconds)*time.Second)

	srv := server.New(server.Options{
		Config:    cfg,
		Scanner:   scanner.FromConfig(ctx, cfg, tel),
		Subs:      subs,
		Telemetry: tel,
		Lists:     heuristics.DefaultLists(),
	})

	log.Printf("Starting Vegil on %s...", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
