package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Rayxworld/Vegil/internal/bot"
	"github.com/Rayxworld/Vegil/internal/config"
	"github.com/Rayxworld/Vegil/internal/scanner"
)

func main() {
	configPath := flag.String("config", "vegil.yaml", "Path to Vegil config file")
	debug := flag.Bool("debug", false, "Log Telegram API traffic")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := bot.New(bot.Options{
		Token:   cfg.Bot.Token(),
		Scanner: scanner.FromConfig(ctx, cfg, nil),
		Debug:   *debug,
	})
	if err != nil {
		log.Fatalf("failed to start bot: %v", err)
	}

	log.Printf("Vegil bot polling for updates")
	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot error: %v", err)
	}
}
