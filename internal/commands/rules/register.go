package rules

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterRuleCommands registers all rule filter commands
func RegisterRuleCommands(client *discord.ExtendedClient) {
	client.RegisterCommand(createAddRuleCommand())
	client.RegisterCommand(createRemoveRuleCommand())
	client.RegisterCommand(createRulesCommand())
	client.RegisterCommand(createFilteredRulesCommand())
}
