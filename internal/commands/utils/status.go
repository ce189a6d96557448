package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// createStatusCommand creates the status command
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Show the bot's status",
		"utils",
		statusHandler,
	).WithUsage("status")
}

func statusHandler(ctx *discord.CommandContext) error {
	db := database.Get()
	dbStatus, _ := db.GetStatus()
	uptime := time.Since(ctx.Client.StartTime).Round(time.Second)

	return ctx.Reply(fmt.Sprintf(
		"📊 **Bot Status**\n"+
			"• Bot: 🟢 Online\n"+
			"• Database: %s\n"+
			"• Servers: %d\n"+
			"• Uptime: %s",
		dbStatus,
		ctx.Client.GuildCount(),
		uptime,
	))
}
