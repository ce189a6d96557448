// Package discord provides the Discord bot client and related structures.
// It wraps discordgo with additional functionality for command and event handling.
package discord

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	botErrors "github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/modapi"
	"github.com/bwmarrin/discordgo"
)

// DiscordGoLogger wraps the custom logger to implement discordgo.Logger interface
// Note: discordgo.Logger is a function, not an interface
func init() {
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		logger.Info(fmt.Sprintf(format, a...), "DiscordGo")
	}
}

// ExtendedClient wraps discordgo.Session with additional functionality
type ExtendedClient struct {
	Session   *discordgo.Session
	Commands  *CommandCollection
	API       *modapi.Client
	StartTime time.Time
	mu        sync.RWMutex
	isReady   bool
}

// CommandCollection holds registered commands, indexed by name and alias
type CommandCollection struct {
	commands map[string]*Command
	byName   map[string]*Command
	mu       sync.RWMutex
}

// NewCommandCollection creates a new CommandCollection
func NewCommandCollection() *CommandCollection {
	return &CommandCollection{
		commands: make(map[string]*Command),
		byName:   make(map[string]*Command),
	}
}

// Set registers a command under its name and every alias
func (cc *CommandCollection) Set(cmd *Command) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.byName[cmd.Name] = cmd
	cc.commands[strings.ToLower(cmd.Name)] = cmd
	for _, alias := range cmd.Aliases {
		cc.commands[strings.ToLower(alias)] = cmd
	}
}

// Get resolves a command by name or alias
func (cc *CommandCollection) Get(name string) (*Command, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	cmd, ok := cc.commands[strings.ToLower(name)]
	return cmd, ok
}

// Size returns the number of distinct commands
func (cc *CommandCollection) Size() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.byName)
}

// All returns all distinct commands keyed by primary name
func (cc *CommandCollection) All() map[string]*Command {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	result := make(map[string]*Command, len(cc.byName))
	for k, v := range cc.byName {
		result[k] = v
	}
	return result
}

var (
	client *ExtendedClient
	once   sync.Once
)

// Init initializes the global Discord client
func Init(token string, api *modapi.Client) (*ExtendedClient, error) {
	var err error
	once.Do(func() {
		client, err = NewClient(token, api)
	})
	return client, err
}

// Get returns the global Discord client
func Get() *ExtendedClient {
	return client
}

// NewClient creates a new ExtendedClient
func NewClient(token string, api *modapi.Client) (*ExtendedClient, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	// Set intents: prefix commands need message content, interactive
	// prompts need messages, paging needs reactions
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent

	// Configure session
	session.ShardCount = 1
	session.SyncEvents = false
	session.StateEnabled = true
	session.LogLevel = discordgo.LogWarning

	c := &ExtendedClient{
		Session:  session,
		Commands: NewCommandCollection(),
		API:      api,
		isReady:  false,
	}

	return c, nil
}

// RegisterCommand adds a command to the collection
func (c *ExtendedClient) RegisterCommand(cmd *Command) {
	c.Commands.Set(cmd)
	logger.Debug("Command registered: "+cmd.Name, "Client")
}

// Start opens the gateway connection and begins dispatching commands
func (c *ExtendedClient) Start() error {
	// Add ready handler
	c.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		c.mu.Lock()
		c.isReady = true
		c.mu.Unlock()

		logger.Success("Bot connected as: "+r.User.Username, "Client")
	})

	// Add message dispatch handler
	c.Session.AddHandler(c.handleMessage)

	// Set start time
	c.StartTime = time.Now()

	// Open connection
	if err := c.Session.Open(); err != nil {
		return err
	}
	return nil
}

// handleMessage parses incoming messages and dispatches prefix commands
func (c *ExtendedClient) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	// Commands are guild-scoped; DMs have no configuration to act on
	if m.GuildID == "" {
		return
	}

	prefix := config.Get().Prefix
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	parts := strings.Fields(strings.TrimPrefix(m.Content, prefix))
	if len(parts) == 0 {
		return
	}

	cmd, ok := c.Commands.Get(parts[0])
	if !ok {
		return
	}

	// Handlers suspend on prompts and remote calls; each invocation gets
	// its own goroutine so one conversation never blocks another
	go c.runCommand(cmd, s, m, parts[1:])
}

// runCommand loads the guild configuration, applies the declared gates and
// executes the handler
func (c *ExtendedClient) runCommand(cmd *Command, s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	defer botErrors.RecoverMiddleware()()

	guildConfig, err := database.LoadGuildConfig(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load config for guild %s: %v", m.GuildID, err), "Client")
		s.ChannelMessageSend(m.ChannelID, "⚠️ The bot's configuration store is currently unavailable. Please try again later.")
		return
	}

	ctx := &CommandContext{
		Session:     s,
		Message:     m,
		Client:      c,
		Args:        args,
		GuildConfig: guildConfig,
	}

	if cmd.DevOnly && m.Author.ID != config.Get().DevUserID {
		ctx.Reply("❌ This command is restricted to the bot developers.")
		return
	}

	// Permission gate: runs before any remote call
	if cmd.RequiresRoles {
		allowed, missing := HasCapabilities(s, m, guildConfig, cmd.RequiredPermissions)
		if !allowed {
			ctx.Reply(fmt.Sprintf("🔒 You need the role for the `%s` permission to use this command.", missing))
			return
		}
	}

	// API key gate: also before any remote call
	if cmd.RequiresApikey && guildConfig.APIKey == "" {
		ctx.Reply("🔑 This command requires an API key. Set one with the `setapikey` command first.")
		return
	}

	if err := cmd.Run(ctx); err != nil {
		var authErr *modapi.AuthError
		if errors.As(err, &authErr) {
			ctx.Reply("⚠️ Your API key is not recognized by the moderation API.")
			return
		}
		botErrors.ReportUnhandled("Command "+cmd.Name, err)
		ctx.Reply("❌ An error occurred. Please contact the developers.")
	}
}

// Stop stops the bot and closes the session
func (c *ExtendedClient) Stop() error {
	c.mu.Lock()
	c.isReady = false
	c.mu.Unlock()

	if c.Session != nil {
		return c.Session.Close()
	}
	return nil
}

// IsReady returns true if the bot is ready
func (c *ExtendedClient) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isReady
}

// GuildCount returns the number of guilds the bot is in
func (c *ExtendedClient) GuildCount() int {
	if c.Session == nil || c.Session.State == nil {
		return 0
	}
	c.Session.State.RLock()
	defer c.Session.State.RUnlock()
	return len(c.Session.State.Guilds)
}

// GetConfig returns the bot configuration
func (c *ExtendedClient) GetConfig() *config.Config {
	return config.Get()
}
