// Package discord provides command types and structures.
package discord

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// Command represents a prefix chat command. The declaration fields are
// what the registry uses to gate invocation before the handler body runs.
type Command struct {
	Name                string
	Aliases             []string
	Description         string
	Usage               string
	Examples            []string
	Category            string
	RequiresRoles       bool
	RequiredPermissions []models.Capability
	RequiresApikey      bool
	DevOnly             bool
	Run                 CommandRunFunc
}

// CommandRunFunc is the function type for command execution
type CommandRunFunc func(ctx *CommandContext) error

// NewCommand creates a new Command with required fields
func NewCommand(name, description, category string, run CommandRunFunc) *Command {
	return &Command{
		Name:        name,
		Description: description,
		Category:    category,
		Run:         run,
	}
}

// WithAliases sets alternative names the command answers to
func (c *Command) WithAliases(aliases ...string) *Command {
	c.Aliases = aliases
	return c
}

// WithUsage sets the usage string shown in help output
func (c *Command) WithUsage(usage string) *Command {
	c.Usage = usage
	return c
}

// WithExamples sets example invocations shown in help output
func (c *Command) WithExamples(examples ...string) *Command {
	c.Examples = examples
	return c
}

// WithPermissions marks the command as role-gated by the given capabilities
func (c *Command) WithPermissions(caps ...models.Capability) *Command {
	c.RequiresRoles = true
	c.RequiredPermissions = caps
	return c
}

// RequiresAPIKey marks the command as needing the guild's API key
func (c *Command) RequiresAPIKey() *Command {
	c.RequiresApikey = true
	return c
}

// AsDev marks the command as a dev-only command
func (c *Command) AsDev() *Command {
	c.DevOnly = true
	return c
}
