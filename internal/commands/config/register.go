package config

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterConfigCommands registers all server configuration commands
func RegisterConfigCommands(client *discord.ExtendedClient) {
	client.RegisterCommand(createSetPermissionsCommand())
	client.RegisterCommand(createSetAPIKeyCommand())
	client.RegisterCommand(createSetContactCommand())
	client.RegisterCommand(createSetCommunityNameCommand())
	client.RegisterCommand(createViewConfigCommand())
	client.RegisterCommand(createCreateWebhookCommand())
}
