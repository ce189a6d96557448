package discord

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

const (
	emojiPrevPage = "⬅️"
	emojiNextPage = "➡️"

	// PagedEmbedTimeout is the inactivity window after which navigation
	// controls are disabled and the listener removed.
	PagedEmbedTimeout = 5 * time.Minute
)

// PageFields splits an ordered field list into deterministic pages: page i
// holds fields [i*perPage, (i+1)*perPage). An empty list still yields one
// (empty) page so there is always something to render.
func PageFields(fields []*discordgo.MessageEmbedField, perPage int) [][]*discordgo.MessageEmbedField {
	if perPage < 1 {
		perPage = 1
	}
	if len(fields) == 0 {
		return [][]*discordgo.MessageEmbedField{{}}
	}

	var pages [][]*discordgo.MessageEmbedField
	for start := 0; start < len(fields); start += perPage {
		end := start + perPage
		if end > len(fields) {
			end = len(fields)
		}
		pages = append(pages, fields[start:end])
	}
	return pages
}

// CreatePagedEmbed renders the field list as a rich message with
// reaction-based navigation. Only the invoking user can page; everyone
// else's reactions are ignored. This is read-only UI and never mutates
// domain state.
func (ctx *CommandContext) CreatePagedEmbed(fields []*discordgo.MessageEmbedField, embed *discordgo.MessageEmbed, perPage int) error {
	pages := PageFields(fields, perPage)

	render := func(page int) *discordgo.MessageEmbed {
		embed.Fields = pages[page]
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d/%d", page+1, len(pages)),
		}
		return embed
	}

	msg, err := ctx.ReplyEmbed(render(0))
	if err != nil {
		return err
	}

	// Single page: nothing to navigate
	if len(pages) <= 1 {
		return nil
	}

	for _, emoji := range []string{emojiPrevPage, emojiNextPage} {
		if err := ctx.Session.MessageReactionAdd(msg.ChannelID, msg.ID, emoji); err != nil {
			logger.Debug("Failed to add paging reaction: "+err.Error(), "PagedEmbed")
		}
	}

	var (
		mu     sync.Mutex
		page   int
		expiry *time.Timer
	)

	remove := ctx.Session.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		if r.MessageID != msg.ID || r.UserID != ctx.Message.Author.ID {
			return
		}

		mu.Lock()
		defer mu.Unlock()

		switch r.Emoji.Name {
		case emojiPrevPage:
			if page > 0 {
				page--
			}
		case emojiNextPage:
			if page < len(pages)-1 {
				page++
			}
		default:
			return
		}

		if expiry != nil {
			expiry.Reset(PagedEmbedTimeout)
		}

		if _, err := s.ChannelMessageEditEmbed(msg.ChannelID, msg.ID, render(page)); err != nil {
			logger.Debug("Failed to edit paged embed: "+err.Error(), "PagedEmbed")
		}
		// Drop the user's reaction so the next press is a fresh event
		if err := s.MessageReactionRemove(msg.ChannelID, msg.ID, r.Emoji.Name, r.UserID); err != nil {
			logger.Debug("Failed to remove paging reaction: "+err.Error(), "PagedEmbed")
		}
	})

	// Arm the expiry only once remove is set so the callback never sees it
	// nil; the handler reads expiry under the same lock
	mu.Lock()
	expiry = time.AfterFunc(PagedEmbedTimeout, func() {
		remove()
		if err := ctx.Session.MessageReactionsRemoveAll(msg.ChannelID, msg.ID); err != nil {
			logger.Debug("Failed to clear paging reactions: "+err.Error(), "PagedEmbed")
		}
	})
	mu.Unlock()

	return nil
}
