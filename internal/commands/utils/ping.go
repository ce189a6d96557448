package utils

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// createPingCommand creates the ping command
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"Check the bot's latency",
		"utils",
		pingHandler,
	).WithUsage("ping")
}

func pingHandler(ctx *discord.CommandContext) error {
	latency := ctx.Client.Session.HeartbeatLatency().Milliseconds()
	return ctx.Reply(fmt.Sprintf("🏓 Pong! Latency: %dms", latency))
}
