package rules

import (
	"context"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createRulesCommand creates the rules command
func createRulesCommand() *discord.Command {
	return discord.NewCommand(
		"rules",
		"List every rule in the moderation catalog",
		"rules",
		rulesHandler,
	).WithAliases("allrules").
		WithUsage("rules")
}

func rulesHandler(ctx *discord.CommandContext) error {
	catalog, err := ctx.Client.API.Rules.FetchAll(context.Background())
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		return ctx.Reply("The moderation catalog has no rules")
	}

	embed := ctx.CreateBaseEmbed()
	embed.Title = "Rules"
	embed.Description = "All rules in the moderation catalog"

	var fields []*discordgo.MessageEmbedField
	for _, rule := range catalog {
		fields = append(fields, ruleField(rule))
	}
	return ctx.CreatePagedEmbed(fields, embed, 5)
}
