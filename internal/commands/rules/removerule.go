package rules

import (
	"context"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createRemoveRuleCommand creates the removerule command
func createRemoveRuleCommand() *discord.Command {
	return discord.NewCommand(
		"removerule",
		"Remove rules from your rule filters, by ID or by list position",
		"rules",
		removeRuleHandler,
	).WithAliases("removerules").
		WithUsage("removerule [...ids or positions]").
		WithExamples("removerule XuciBx7", "removerule 2", "removerule 1 3 XuciBx9").
		WithPermissions(models.CapSetCategories)
}

func removeRuleHandler(ctx *discord.CommandContext) error {
	catalog, err := ctx.Client.API.Rules.FetchAll(context.Background())
	if err != nil {
		return err
	}

	// With no args, show the current filters in their stored order so the
	// positions the user types line up with what they see
	if len(ctx.Args) == 0 {
		embed := ctx.CreateBaseEmbed()
		embed.Title = "Filtered Rules"
		embed.Description = "Rules currently in your filters"
		var fields []*discordgo.MessageEmbedField
		for i, id := range ctx.GuildConfig.RuleFilters {
			if rule := FindRule(catalog, id); rule != nil {
				fields = append(fields, numberedRuleField(i+1, *rule))
			}
		}
		if err := ctx.CreatePagedEmbed(fields, embed, 5); err != nil {
			logger.Debug("Failed to send filter embed: "+err.Error(), "RemoveRule")
		}
	}

	args, ok := ctx.GetArgsOrPrompt("⌨️ No rules provided. Please provide IDs or list positions in a single message, separated with spaces:")
	if !ok {
		return nil
	}

	candidates := RemoveCandidates(args, catalog, ctx.GuildConfig)
	if len(candidates) == 0 {
		return ctx.Reply("No valid rules to be removed")
	}

	preview := ctx.CreateBaseEmbed()
	preview.Title = "Filtered Rules"
	preview.Description = "Rules to be removed from your filters"
	var fields []*discordgo.MessageEmbedField
	for _, rule := range candidates {
		fields = append(fields, ruleField(rule))
	}
	if err := ctx.CreatePagedEmbed(fields, preview, 5); err != nil {
		logger.Debug("Failed to send preview embed: "+err.Error(), "RemoveRule")
	}

	if !ctx.GetConfirmationMessage("Are you sure you want to remove these rules from your rule filters?") {
		return ctx.Reply("Removing rules cancelled")
	}

	ids := make([]string, len(candidates))
	for i, rule := range candidates {
		ids[i] = rule.ID
	}
	err = database.MutateGuildConfig(ctx.Message.GuildID, func(cfg *models.GuildConfig) {
		cfg.RemoveRuleFilters(ids...)
	})
	if err != nil {
		return err
	}
	return ctx.Reply("✅ Successfully removed specified filtered rules")
}
