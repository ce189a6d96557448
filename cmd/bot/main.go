// Package main is the entry point for the PancyGuard Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PancyStudios/PancyGuardGo/internal/commands"
	"github.com/PancyStudios/PancyGuardGo/internal/events"
	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/modapi"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/PancyStudios/PancyGuardGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting PancyGuard Go...", "Main")
	logger.Info(fmt.Sprintf("Working directory: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize database
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
		// Continue without database - it will attempt to reconnect
	}
	defer func() {
		if db != nil {
			err := db.Disconnect()
			if err != nil {
				return
			}
		}
	}()

	// Initialize global DataManagers
	if db != nil {
		database.InitGlobalDataManagers(db)
	}

	// Initialize MQTT
	mqttClientID := "pancyguard"
	if !cfg.IsProd() {
		mqttClientID = "pancyguard_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
		cfg.Environment,
	)
	defer mqttClient.Destroy()

	// Announce every confirmed configuration save on the ops feed
	database.OnConfigSaved = func(guildID string) {
		go mqttClient.PublishConfigChange(guildID)
	}

	// Answer operator status queries over MQTT
	mqttClient.On("status", func(payload map[string]interface{}) (interface{}, error) {
		dbStatus, dbOnline := database.Get().GetStatus()
		ready := discordClient != nil && discordClient.IsReady()
		guilds := 0
		if discordClient != nil {
			guilds = discordClient.GuildCount()
		}
		return map[string]interface{}{
			"bot":      ready,
			"database": dbOnline,
			"dbStatus": dbStatus,
			"guilds":   guilds,
			"at":       time.Now().Format(time.RFC3339),
		}, nil
	})

	// Initialize web server
	webServer := web.Init(cfg.LogsWebhook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize the moderation API client
	apiClient := modapi.Init(cfg.APIURL)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken, apiClient)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands and events
	commands.RegisterAll(discordClient)
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {
			return
		}
	}(discordClient)

	logger.Success("PancyGuard Go started!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down PancyGuard Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
