package discord

import (
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// CommandContext carries everything a handler needs for one invocation:
// the triggering message, the parsed arguments and the guild's
// configuration loaded before dispatch.
type CommandContext struct {
	Session     *discordgo.Session
	Message     *discordgo.MessageCreate
	Client      *ExtendedClient
	Args        []string
	GuildConfig *models.GuildConfig
}

// Reply sends a plain text message to the invoking channel
func (ctx *CommandContext) Reply(content string) error {
	_, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, content)
	return err
}

// ReplyEmbed sends a rich embed to the invoking channel
func (ctx *CommandContext) ReplyEmbed(embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, embed)
}

// User returns the user who triggered the command
func (ctx *CommandContext) User() *discordgo.User {
	return ctx.Message.Author
}

// Member returns the guild member who triggered the command
func (ctx *CommandContext) Member() *discordgo.Member {
	return ctx.Message.Member
}

// Guild returns the guild where the command was invoked
func (ctx *CommandContext) Guild() *discordgo.Guild {
	guild, _ := ctx.Session.State.Guild(ctx.Message.GuildID)
	return guild
}

// Channel returns the channel where the command was invoked
func (ctx *CommandContext) Channel() *discordgo.Channel {
	channel, _ := ctx.Session.State.Channel(ctx.Message.ChannelID)
	return channel
}

// CreateBaseEmbed returns an embed pre-filled with the bot's standard
// color, footer and timestamp
func (ctx *CommandContext) CreateBaseEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:     0x2ECC71,
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "PancyGuard Go",
		},
	}
}

// ResolveRole resolves a token that is either a role mention (<@&id>) or a
// raw role ID into one of the guild's roles. Returns nil when the token
// matches nothing.
func (ctx *CommandContext) ResolveRole(token string) *discordgo.Role {
	id := token
	if len(id) > 4 && id[:3] == "<@&" && id[len(id)-1] == '>' {
		id = id[3 : len(id)-1]
	}

	guild := ctx.Guild()
	if guild == nil {
		return nil
	}
	for _, role := range guild.Roles {
		if role.ID == id {
			return role
		}
	}
	return nil
}

// ResolveChannel resolves a token that is either a channel mention (<#id>)
// or a raw channel ID into one of the guild's channels. Returns nil when
// the token matches nothing.
func (ctx *CommandContext) ResolveChannel(token string) *discordgo.Channel {
	id := token
	if len(id) > 3 && id[:2] == "<#" && id[len(id)-1] == '>' {
		id = id[2 : len(id)-1]
	}

	channel, err := ctx.Session.State.Channel(id)
	if err != nil || channel == nil || channel.GuildID != ctx.Message.GuildID {
		return nil
	}
	return channel
}
