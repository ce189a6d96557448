package rules

import (
	"context"
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createAddRuleCommand creates the addrule command
func createAddRuleCommand() *discord.Command {
	return discord.NewCommand(
		"addrule",
		"Add rules to your rule filters",
		"rules",
		addRuleHandler,
	).WithAliases("addrules").
		WithUsage("addrule [...ids]").
		WithExamples("addrule XuciBx7", "addrule XuciBx7 XuciBx9").
		WithPermissions(models.CapSetCategories)
}

func addRuleHandler(ctx *discord.CommandContext) error {
	catalog, err := ctx.Client.API.Rules.FetchAll(context.Background())
	if err != nil {
		return err
	}

	// With no args, show the rules not yet filtered and ask for IDs
	if len(ctx.Args) == 0 {
		embed := ctx.CreateBaseEmbed()
		embed.Title = "Rules"
		embed.Description = "All rules in the moderation catalog"
		var fields []*discordgo.MessageEmbedField
		for _, rule := range catalog {
			if ctx.GuildConfig.HasRuleFilter(rule.ID) {
				continue
			}
			fields = append(fields, ruleField(rule))
		}
		if err := ctx.CreatePagedEmbed(fields, embed, 5); err != nil {
			logger.Debug("Failed to send catalog embed: "+err.Error(), "AddRule")
		}
	}

	args, ok := ctx.GetArgsOrPrompt("⌨️ No rules provided. Please provide IDs in a single message, separated with spaces:")
	if !ok {
		return nil
	}

	candidates := AddCandidates(args, catalog, ctx.GuildConfig)
	if len(candidates) == 0 {
		return ctx.Reply("No valid or new rules to add")
	}

	preview := ctx.CreateBaseEmbed()
	preview.Title = "Rules"
	preview.Description = "Rules to be added to your filters"
	var fields []*discordgo.MessageEmbedField
	for _, id := range candidates {
		fields = append(fields, ruleField(*FindRule(catalog, id)))
	}
	if err := ctx.CreatePagedEmbed(fields, preview, 5); err != nil {
		logger.Debug("Failed to send preview embed: "+err.Error(), "AddRule")
	}

	if !ctx.GetConfirmationMessage("Are you sure you want to add these rules to your rule filters?") {
		return ctx.Reply("Adding rules cancelled")
	}

	err = database.MutateGuildConfig(ctx.Message.GuildID, func(cfg *models.GuildConfig) {
		cfg.AddRuleFilters(candidates...)
	})
	if err != nil {
		return err
	}
	return ctx.Reply("✅ Successfully added rule filters")
}

// ruleField renders one rule as an embed field
func ruleField(rule models.Rule) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("%s (`%s`)", rule.ShortDesc, rule.ID),
		Value:  rule.LongDesc,
		Inline: false,
	}
}

// numberedRuleField renders one rule prefixed with its 1-based filter position
func numberedRuleField(position int, rule models.Rule) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("%d) %s (`%s`)", position, rule.ShortDesc, rule.ID),
		Value:  rule.LongDesc,
		Inline: false,
	}
}
