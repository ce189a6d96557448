package config

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createSetPermissionsCommand creates the setpermissions command
func createSetPermissionsCommand() *discord.Command {
	return discord.NewCommand(
		"setpermissions",
		"Map bot permissions to server roles",
		"config",
		setPermissionsHandler,
	).WithAliases("setperms").
		WithUsage("setpermissions [permission] [role]").
		WithExamples("setpermissions", "setpermissions reports", "setpermissions reports @Moderators").
		WithPermissions(models.CapSetConfig)
}

func setPermissionsHandler(ctx *discord.CommandContext) error {
	if len(ctx.Args) == 0 {
		return setAllPermissions(ctx)
	}
	return setOnePermission(ctx)
}

// setAllPermissions walks the fixed permission list, prompting once per
// slot. An invalid role reference is reported immediately but does not
// stop the loop; that slot is simply left unset. The whole mapping is
// committed in one save after a combined preview.
func setAllPermissions(ctx *discord.CommandContext) error {
	ctx.Reply("Process of setting roles has started.")

	mapping := make(models.RolePermissions, len(models.Capabilities))
	for _, capability := range models.Capabilities {
		reply, ok := ctx.GetMessageResponse(fmt.Sprintf("Type in the ID or ping the role for the `%s` permission", capability))
		if !ok || reply == nil {
			return ctx.Reply("⚠️ No permission was sent")
		}

		token := firstToken(reply.Content)
		role := ctx.ResolveRole(token)
		if role == nil {
			ctx.Reply(fmt.Sprintf("⚠️ `%s` is not a valid role", token))
			mapping[capability] = ""
			continue
		}
		mapping[capability] = role.ID
	}

	embed := ctx.CreateBaseEmbed()
	embed.Title = "Role Configuration"
	embed.Description = "The role mapped to each permission"
	for _, capability := range models.Capabilities {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  string(capability),
			Value: roleMention(mapping[capability]),
		})
	}
	if _, err := ctx.ReplyEmbed(embed); err != nil {
		return err
	}

	if !ctx.GetConfirmationMessage("Are you sure you want these settings applied?") {
		return ctx.Reply("Role configuration cancelled")
	}

	err := database.MutateGuildConfig(ctx.Message.GuildID, func(cfg *models.GuildConfig) {
		for _, capability := range models.Capabilities {
			cfg.SetRole(capability, mapping[capability])
		}
	})
	if err != nil {
		return err
	}
	return ctx.Reply("✅ Successfully set all permissions!")
}

// setOnePermission handles the [permission] [role] form
func setOnePermission(ctx *discord.CommandContext) error {
	capability := models.Capability(ctx.Args[0])
	if !models.ValidCapability(capability) {
		return ctx.Reply(fmt.Sprintf("⚠️ `%s` is not a valid permission type", ctx.Args[0]))
	}

	var role *discordgo.Role
	if len(ctx.Args) < 2 {
		reply, ok := ctx.GetMessageResponse("Type in the ID or ping the role for the permission")
		if !ok || reply == nil {
			return ctx.Reply("⚠️ No role was sent")
		}
		token := firstToken(reply.Content)
		role = ctx.ResolveRole(token)
		if role == nil {
			return ctx.Reply(fmt.Sprintf("⚠️ `%s` is not a valid role", token))
		}
	} else {
		role = ctx.ResolveRole(ctx.Args[1])
		if role == nil {
			return ctx.Reply(fmt.Sprintf("⚠️ `%s` is not a valid role", ctx.Args[1]))
		}
	}

	if !ctx.GetConfirmationMessage(fmt.Sprintf("Are you sure you want to set the `%s` permission to %s?", capability, role.Name)) {
		return ctx.Reply("Role configuration cancelled")
	}

	err := database.MutateGuildConfig(ctx.Message.GuildID, func(cfg *models.GuildConfig) {
		cfg.SetRole(capability, role.ID)
	})
	if err != nil {
		return err
	}
	return ctx.Reply(fmt.Sprintf("✅ Successfully set the `%s` permission to %s!", capability, role.Name))
}

// firstToken returns the first whitespace-separated token of a reply
func firstToken(content string) string {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// roleMention renders a role ID as a mention, or a placeholder when unset
func roleMention(roleID string) string {
	if roleID == "" {
		return "*unset*"
	}
	return fmt.Sprintf("<@&%s>", roleID)
}
