package communities

import (
	"context"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createRemoveCommunityCommand creates the removecommunity command
func createRemoveCommunityCommand() *discord.Command {
	return discord.NewCommand(
		"removecommunity",
		"Remove communities from your trusted communities filter",
		"communities",
		removeCommunityHandler,
	).WithAliases("removecommunities", "remcommunity").
		WithUsage("removecommunity [...ids]").
		WithExamples("removecommunity XuciBx7", "removecommunity XuciBx7 XuciBx9").
		WithPermissions(models.CapSetCommunities)
}

func removeCommunityHandler(ctx *discord.CommandContext) error {
	catalog, err := ctx.Client.API.Communities.FetchAll(context.Background())
	if err != nil {
		return err
	}

	// With no args, show the currently trusted communities and ask for IDs
	if len(ctx.Args) == 0 {
		embed := ctx.CreateBaseEmbed()
		embed.Title = "Trusted Communities"
		embed.Description = "Communities currently in your filter"
		var fields []*discordgo.MessageEmbedField
		for _, id := range ctx.GuildConfig.TrustedCommunities {
			if community := FindCommunity(catalog, id); community != nil {
				fields = append(fields, communityField(*community))
			}
		}
		if err := ctx.CreatePagedEmbed(fields, embed, 10); err != nil {
			logger.Debug("Failed to send filter embed: "+err.Error(), "RemoveCommunity")
		}
	}

	args, ok := ctx.GetArgsOrPrompt("⌨️ No communities provided. Please provide IDs in a single message, separated with spaces:")
	if !ok {
		return nil
	}

	candidates := RemoveCandidates(args, ctx.GuildConfig)
	if len(candidates) == 0 {
		return ctx.Reply("No valid communities to remove")
	}

	preview := ctx.CreateBaseEmbed()
	preview.Title = "Trusted Communities"
	preview.Description = "Communities to be removed from your filter"
	var fields []*discordgo.MessageEmbedField
	for _, id := range candidates {
		if community := FindCommunity(catalog, id); community != nil {
			fields = append(fields, communityField(*community))
		} else {
			fields = append(fields, &discordgo.MessageEmbedField{Name: id, Value: "Unknown community", Inline: false})
		}
	}
	if err := ctx.CreatePagedEmbed(fields, preview, 10); err != nil {
		logger.Debug("Failed to send preview embed: "+err.Error(), "RemoveCommunity")
	}

	if !ctx.GetConfirmationMessage("Are you sure you want to remove these communities from your filters?") {
		return ctx.Reply("Removing communities cancelled")
	}

	err = database.MutateGuildConfig(ctx.Message.GuildID, func(cfg *models.GuildConfig) {
		cfg.RemoveTrustedCommunities(candidates...)
	})
	if err != nil {
		return err
	}
	return ctx.Reply("✅ Successfully removed community filters")
}
