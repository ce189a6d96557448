package dev

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterDevCommands registers the developer-only commands
func RegisterDevCommands(client *discord.ExtendedClient) {
	client.RegisterCommand(createEvalCommand())
}
