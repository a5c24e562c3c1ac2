package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	discordclient "lootbot/clients/discord"
	webhookclient "lootbot/clients/webhook"
	"lootbot/config"
	"lootbot/handlers"
	"lootbot/services/loot"
)

// webhookTimeout bounds the single webhook attempt per lookup
const webhookTimeout = 8 * time.Second

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	discordClient, err := discordclient.NewDiscordClient(cfg.DiscordToken)
	if err != nil {
		return err
	}

	webhookClient := webhookclient.NewWebhookClient(cfg.WebhookURL, webhookTimeout)
	lootService := loot.NewLootService(webhookClient)

	eventsHandler, err := handlers.NewDiscordEventsHandler(cfg.DiscordToken, discordClient, lootService)
	if err != nil {
		return err
	}

	if err := eventsHandler.StartBot(); err != nil {
		return err
	}
	defer eventsHandler.StopBot()

	healthServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewHealthRouter(cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 30 * time.Second,
	}
	go func() {
		log.Printf("🌐 Health endpoint listening on port %s", cfg.Port)
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Health server error: %v", err)
		}
	}()

	// Wait here until an interrupt or term signal is received
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	log.Printf("📋 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Health server shutdown error: %v", err)
	}

	return nil
}
