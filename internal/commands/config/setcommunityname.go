package config

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// createSetCommunityNameCommand creates the setcommunityname command
func createSetCommunityNameCommand() *discord.Command {
	return discord.NewCommand(
		"setcommunityname",
		"Set the name this community presents to others",
		"config",
		setCommunityNameHandler,
	).WithAliases("setname").
		WithUsage("setcommunityname [name]").
		WithExamples("setcommunityname My Cool Server").
		WithPermissions(models.CapSetConfig)
}

func setCommunityNameHandler(ctx *discord.CommandContext) error {
	var name string
	if len(ctx.Args) > 0 {
		name = strings.Join(ctx.Args, " ")
	} else {
		reply, ok := ctx.GetMessageResponse("⌨️ Please send the new community name:")
		if !ok || reply == nil {
			return ctx.Reply("⌛ No response received. Cancelled.")
		}
		name = strings.TrimSpace(reply.Content)
	}
	if name == "" {
		return ctx.Reply("No name was provided")
	}

	if !ctx.GetConfirmationMessage(fmt.Sprintf("Set the community name to `%s`?", name)) {
		return ctx.Reply("Name change cancelled")
	}

	err := database.MutateGuildConfig(ctx.Message.GuildID, func(cfg *models.GuildConfig) {
		cfg.CommunityName = name
	})
	if err != nil {
		return err
	}
	return ctx.Reply("✅ Community name updated")
}
