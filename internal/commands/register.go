// Package commands wires every command category into the Discord client.
// Commands are organized in subdirectories by category.
package commands

import (
	"github.com/PancyStudios/PancyGuardGo/internal/commands/communities"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/config"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/dev"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/rules"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/utils"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	communities.RegisterCommunityCommands(client)
	rules.RegisterRuleCommands(client)
	config.RegisterConfigCommands(client)
	utils.RegisterUtilsCommands(client)
	dev.RegisterDevCommands(client)
}
