package communities

import (
	"context"
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createAddCommunityCommand creates the addcommunity command
func createAddCommunityCommand() *discord.Command {
	return discord.NewCommand(
		"addcommunity",
		"Add communities to your trusted communities filter",
		"communities",
		addCommunityHandler,
	).WithAliases("addcommunities").
		WithUsage("addcommunity [...ids]").
		WithExamples("addcommunity XuciBx7", "addcommunity XuciBx7 XuciBx9").
		WithPermissions(models.CapSetCommunities)
}

func addCommunityHandler(ctx *discord.CommandContext) error {
	catalog, err := ctx.Client.API.Communities.FetchAll(context.Background())
	if err != nil {
		return err
	}

	// With no args, show the communities not yet trusted and ask for IDs
	if len(ctx.Args) == 0 {
		embed := ctx.CreateBaseEmbed()
		embed.Title = "Communities"
		embed.Description = "All communities in the moderation catalog"
		var fields []*discordgo.MessageEmbedField
		for _, community := range catalog {
			if ctx.GuildConfig.HasTrustedCommunity(community.ID) {
				continue
			}
			fields = append(fields, communityField(community))
		}
		if err := ctx.CreatePagedEmbed(fields, embed, 10); err != nil {
			logger.Debug("Failed to send catalog embed: "+err.Error(), "AddCommunity")
		}
	}

	args, ok := ctx.GetArgsOrPrompt("⌨️ No communities provided. Please provide IDs in a single message, separated with spaces:")
	if !ok {
		return nil
	}

	candidates := AddCandidates(args, catalog, ctx.GuildConfig)
	if len(candidates) == 0 {
		return ctx.Reply("No valid or new communities to add")
	}

	preview := ctx.CreateBaseEmbed()
	preview.Title = "Communities"
	preview.Description = "Communities to be added to your filter"
	var fields []*discordgo.MessageEmbedField
	for _, id := range candidates {
		fields = append(fields, communityField(*FindCommunity(catalog, id)))
	}
	if err := ctx.CreatePagedEmbed(fields, preview, 10); err != nil {
		logger.Debug("Failed to send preview embed: "+err.Error(), "AddCommunity")
	}

	if !ctx.GetConfirmationMessage("Are you sure you want to add these communities to your filters?") {
		return ctx.Reply("Adding communities cancelled")
	}

	err = database.MutateGuildConfig(ctx.Message.GuildID, func(cfg *models.GuildConfig) {
		cfg.AddTrustedCommunities(candidates...)
	})
	if err != nil {
		return err
	}
	return ctx.Reply("✅ Successfully added community filters")
}

// communityField renders one community as an embed field
func communityField(community models.Community) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("%s | `%s`", community.Name, community.ID),
		Value:  contactOrUnknown(community.Contact),
		Inline: false,
	}
}

func contactOrUnknown(contact string) string {
	if contact == "" {
		return "Unknown contact"
	}
	return contact
}
