package config

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// createSetContactCommand creates the setcontact command
func createSetContactCommand() *discord.Command {
	return discord.NewCommand(
		"setcontact",
		"Set the contact shown to other communities",
		"config",
		setContactHandler,
	).WithUsage("setcontact [contact]").
		WithExamples("setcontact admin@example.com", "setcontact @ServerOwner").
		WithPermissions(models.CapSetConfig)
}

func setContactHandler(ctx *discord.CommandContext) error {
	var contact string
	if len(ctx.Args) > 0 {
		contact = strings.Join(ctx.Args, " ")
	} else {
		reply, ok := ctx.GetMessageResponse("⌨️ Please send the new contact:")
		if !ok || reply == nil {
			return ctx.Reply("⌛ No response received. Cancelled.")
		}
		contact = strings.TrimSpace(reply.Content)
	}
	if contact == "" {
		return ctx.Reply("No contact was provided")
	}

	if !ctx.GetConfirmationMessage(fmt.Sprintf("Set the contact to `%s`?", contact)) {
		return ctx.Reply("Contact change cancelled")
	}

	err := database.MutateGuildConfig(ctx.Message.GuildID, func(cfg *models.GuildConfig) {
		cfg.Contact = contact
	})
	if err != nil {
		return err
	}
	return ctx.Reply("✅ Contact updated")
}
