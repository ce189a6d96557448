package rules

import (
	"context"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createFilteredRulesCommand creates the filteredrules command
func createFilteredRulesCommand() *discord.Command {
	return discord.NewCommand(
		"filteredrules",
		"List the rules currently in your rule filters",
		"rules",
		filteredRulesHandler,
	).WithAliases("getrulesfiltered", "myrules").
		WithUsage("filteredrules")
}

func filteredRulesHandler(ctx *discord.CommandContext) error {
	if len(ctx.GuildConfig.RuleFilters) == 0 {
		return ctx.Reply("No rules filtered. Add some with the `addrule` command.")
	}

	catalog, err := ctx.Client.API.Rules.FetchAll(context.Background())
	if err != nil {
		return err
	}

	embed := ctx.CreateBaseEmbed()
	embed.Title = "Filtered Rules"
	embed.Description = "Rules this server enforces, in filter order"

	var fields []*discordgo.MessageEmbedField
	for i, id := range ctx.GuildConfig.RuleFilters {
		if rule := FindRule(catalog, id); rule != nil {
			fields = append(fields, numberedRuleField(i+1, *rule))
		} else {
			fields = append(fields, &discordgo.MessageEmbedField{Name: id, Value: "No longer in the catalog", Inline: false})
		}
	}
	return ctx.CreatePagedEmbed(fields, embed, 5)
}
