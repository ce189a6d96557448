package communities

import (
	"context"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createTrustedCommand creates the trusted command
func createTrustedCommand() *discord.Command {
	return discord.NewCommand(
		"trusted",
		"List the communities you currently trust",
		"communities",
		trustedHandler,
	).WithAliases("trustedcommunities").
		WithUsage("trusted")
}

func trustedHandler(ctx *discord.CommandContext) error {
	if len(ctx.GuildConfig.TrustedCommunities) == 0 {
		return ctx.Reply("You don't trust any communities yet. Add some with the `addcommunity` command.")
	}

	catalog, err := ctx.Client.API.Communities.FetchAll(context.Background())
	if err != nil {
		return err
	}

	embed := ctx.CreateBaseEmbed()
	embed.Title = "Trusted Communities"
	embed.Description = "Communities whose reports this server consumes"

	var fields []*discordgo.MessageEmbedField
	for _, id := range ctx.GuildConfig.TrustedCommunities {
		if community := FindCommunity(catalog, id); community != nil {
			fields = append(fields, communityField(*community))
		} else {
			fields = append(fields, &discordgo.MessageEmbedField{Name: id, Value: "No longer in the catalog", Inline: false})
		}
	}
	return ctx.CreatePagedEmbed(fields, embed, 10)
}
