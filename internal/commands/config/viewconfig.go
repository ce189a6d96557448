package config

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createViewConfigCommand creates the viewconfig command
func createViewConfigCommand() *discord.Command {
	return discord.NewCommand(
		"viewconfig",
		"Show this server's current configuration",
		"config",
		viewConfigHandler,
	).WithAliases("showconfig", "config").
		WithUsage("viewconfig")
}

func viewConfigHandler(ctx *discord.CommandContext) error {
	cfg := ctx.GuildConfig

	embed := ctx.CreateBaseEmbed()
	embed.Title = "Server Configuration"
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Community name", Value: orUnset(cfg.CommunityName)},
		{Name: "Contact", Value: orUnset(cfg.Contact)},
		{Name: "API key", Value: keyStatus(cfg.APIKey)},
		{Name: "Trusted communities", Value: countOrNone(len(cfg.TrustedCommunities), "community", "communities")},
		{Name: "Rule filters", Value: countOrNone(len(cfg.RuleFilters), "rule", "rules")},
		{Name: "Roles", Value: rolesSummary(cfg)},
	}

	_, err := ctx.ReplyEmbed(embed)
	return err
}

func orUnset(value string) string {
	if value == "" {
		return "*unset*"
	}
	return value
}

// keyStatus never echoes the stored secret
func keyStatus(apikey string) string {
	if apikey == "" {
		return "*unset*"
	}
	return "set"
}

func countOrNone(n int, singular, plural string) string {
	switch n {
	case 0:
		return "none"
	case 1:
		return fmt.Sprintf("1 %s", singular)
	default:
		return fmt.Sprintf("%d %s", n, plural)
	}
}

func rolesSummary(cfg *models.GuildConfig) string {
	var lines []string
	for _, capability := range models.Capabilities {
		lines = append(lines, fmt.Sprintf("`%s`: %s", capability, roleMention(cfg.RoleFor(capability))))
	}
	return strings.Join(lines, "\n")
}
