package config

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// createSetAPIKeyCommand creates the setapikey command
func createSetAPIKeyCommand() *discord.Command {
	return discord.NewCommand(
		"setapikey",
		"Store the moderation API key for this server",
		"config",
		setAPIKeyHandler,
	).WithUsage("setapikey [key]").
		WithExamples("setapikey", "setapikey oy3q9hv...").
		WithPermissions(models.CapSetConfig)
}

func setAPIKeyHandler(ctx *discord.CommandContext) error {
	var key string
	if len(ctx.Args) > 0 {
		key = ctx.Args[0]
		// The invocation message carries the secret; drop it from the channel
		if err := ctx.Session.ChannelMessageDelete(ctx.Message.ChannelID, ctx.Message.ID); err != nil {
			logger.Debug("Failed to delete API key message: "+err.Error(), "SetAPIKey")
		}
	} else {
		reply, ok := ctx.GetMessageResponse("⌨️ Please send the API key:")
		if !ok || reply == nil {
			return ctx.Reply("⌛ No response received. Cancelled.")
		}
		key = firstToken(reply.Content)
		if err := ctx.Session.ChannelMessageDelete(reply.ChannelID, reply.ID); err != nil {
			logger.Debug("Failed to delete API key message: "+err.Error(), "SetAPIKey")
		}
	}
	if key == "" {
		return ctx.Reply("No API key was provided")
	}

	err := database.MutateGuildConfig(ctx.Message.GuildID, func(cfg *models.GuildConfig) {
		cfg.APIKey = key
	})
	if err != nil {
		return err
	}
	return ctx.Reply("✅ API key saved")
}
