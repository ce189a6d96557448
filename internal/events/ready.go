// Package events provides event handlers for the bot
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.Session.AddHandler(onReady)
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot connected: %s#%s", r.User.Username, r.User.Discriminator), "Ready")
	logger.Info(fmt.Sprintf("📊 Connected to %d servers", len(r.Guilds)), "Ready")

	err := s.UpdateGameStatus(0, fmt.Sprintf("🛡️ %shelp", config.Get().Prefix))
	if err != nil {
		logger.Error(fmt.Sprintf("Error setting presence: %v", err), "Ready")
		return
	}

	logger.Debug("Bot presence set", "Ready")
}
