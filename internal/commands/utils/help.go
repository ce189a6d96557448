package utils

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createHelpCommand creates the help command
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Show all commands, or the details of one command",
		"utils",
		helpHandler,
	).WithUsage("help (command)").
		WithExamples("help", "help addcommunity")
}

func helpHandler(ctx *discord.CommandContext) error {
	prefix := ctx.Client.GetConfig().Prefix

	// Detail view for a single command
	if len(ctx.Args) > 0 {
		cmd, ok := ctx.Client.Commands.Get(ctx.Args[0])
		if !ok {
			return ctx.Reply(fmt.Sprintf("Unknown command `%s`", ctx.Args[0]))
		}

		embed := ctx.CreateBaseEmbed()
		embed.Title = prefix + cmd.Name
		embed.Description = cmd.Description
		if len(cmd.Aliases) > 0 {
			embed.Description += "\nAliases: `" + strings.Join(cmd.Aliases, "`, `") + "`"
		}
		if cmd.Usage != "" {
			embed.Description += "\nUsage: `" + prefix + cmd.Usage + "`"
		}
		if len(cmd.Examples) > 0 {
			embed.Description += "\nExamples: `" + prefix + strings.Join(cmd.Examples, "`, `"+prefix) + "`"
		}
		_, err := ctx.ReplyEmbed(embed)
		return err
	}

	// Overview grouped by category
	byCategory := make(map[string][]string)
	for name, cmd := range ctx.Client.Commands.All() {
		if cmd.DevOnly {
			continue
		}
		byCategory[cmd.Category] = append(byCategory[cmd.Category], name)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	embed := ctx.CreateBaseEmbed()
	embed.Title = "PancyGuard Help"
	embed.Description = fmt.Sprintf("Use `%shelp <command>` for details on one command", prefix)
	for _, category := range categories {
		names := byCategory[category]
		sort.Strings(names)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  category,
			Value: "`" + strings.Join(names, "`, `") + "`",
		})
	}

	_, err := ctx.ReplyEmbed(embed)
	return err
}
