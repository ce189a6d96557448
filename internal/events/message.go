// Package events provides event handlers for message events
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageCreate)
}

// onMessageCreate answers direct mentions of the bot with a pointer to the
// help command. Command dispatch itself lives in the client, not here.
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	for _, mention := range m.Mentions {
		if mention.ID == s.State.User.ID {
			prefix := config.Get().Prefix
			embed := &discordgo.MessageEmbed{
				Title:       "👋 Hi!",
				Description: fmt.Sprintf("My prefix here is `%s`.\nUse `%shelp` to see all available commands.", prefix, prefix),
				Color:       0x3498DB,
			}
			_, err := s.ChannelMessageSendEmbed(m.ChannelID, embed)
			if err != nil {
				logger.Error(fmt.Sprintf("Error sending mention reply: %v", err), "Message")
			}
			break
		}
	}
}
