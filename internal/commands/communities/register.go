package communities

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterCommunityCommands registers all community filter commands
func RegisterCommunityCommands(client *discord.ExtendedClient) {
	client.RegisterCommand(createAddCommunityCommand())
	client.RegisterCommand(createRemoveCommunityCommand())
	client.RegisterCommand(createTrustedCommand())
}
