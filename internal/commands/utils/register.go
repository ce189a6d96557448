package utils

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterUtilsCommands registers all utility commands
func RegisterUtilsCommands(client *discord.ExtendedClient) {
	client.RegisterCommand(createPingCommand())
	client.RegisterCommand(createStatusCommand())
	client.RegisterCommand(createHelpCommand())
}
