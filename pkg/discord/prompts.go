package discord

import (
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// ResponseTimeout bounds how long a handler stays suspended waiting for
// the invoking user's next message.
const ResponseTimeout = 60 * time.Second

// GetMessageResponse sends the prompt and waits for the next message from
// the invoking user in the same channel. Returns (nil, false) on timeout.
// The gateway listener is always removed, whether the user answered or the
// timeout fired.
func (ctx *CommandContext) GetMessageResponse(prompt string) (*discordgo.Message, bool) {
	if err := ctx.Reply(prompt); err != nil {
		logger.Error("Failed to send prompt: "+err.Error(), "Prompt")
		return nil, false
	}

	replies := make(chan *discordgo.Message, 1)
	remove := ctx.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.ID != ctx.Message.Author.ID {
			return
		}
		if m.ChannelID != ctx.Message.ChannelID {
			return
		}
		select {
		case replies <- m.Message:
		default:
		}
	})
	defer remove()

	return waitForReply(replies, ResponseTimeout)
}

// waitForReply returns the first delivered reply, or (nil, false) once the
// timeout elapses without one
func waitForReply(replies <-chan *discordgo.Message, timeout time.Duration) (*discordgo.Message, bool) {
	select {
	case reply := <-replies:
		return reply, true
	case <-time.After(timeout):
		return nil, false
	}
}

// GetConfirmationMessage asks a yes/no question. Only an affirmative reply
// returns true; any other answer or a timeout counts as "no".
func (ctx *CommandContext) GetConfirmationMessage(prompt string) bool {
	reply, ok := ctx.GetMessageResponse(prompt)
	return interpretConfirmation(reply, ok)
}

// interpretConfirmation maps a prompt outcome to a yes/no decision. A
// timeout and an explicit negative answer are indistinguishable here: both
// are "no".
func interpretConfirmation(reply *discordgo.Message, ok bool) bool {
	if !ok || reply == nil {
		return false
	}
	return IsAffirmative(reply.Content)
}

// GetArgsOrPrompt returns the positional arguments, asking the invoking
// user for them when none were given. Returns (nil, false) when the prompt
// times out or the reply carries no usable tokens.
func (ctx *CommandContext) GetArgsOrPrompt(prompt string) ([]string, bool) {
	if len(ctx.Args) > 0 {
		return ctx.Args, true
	}

	reply, ok := ctx.GetMessageResponse(prompt)
	if !ok || reply == nil {
		ctx.Reply("⌛ No response received. Cancelled.")
		return nil, false
	}

	args := strings.Fields(reply.Content)
	if len(args) == 0 {
		ctx.Reply("No IDs were provided")
		return nil, false
	}
	return args, true
}

// IsAffirmative reports whether a reply counts as a "yes"
func IsAffirmative(content string) bool {
	switch strings.ToLower(strings.TrimSpace(content)) {
	case "y", "yes":
		return true
	}
	return false
}
