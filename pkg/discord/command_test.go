package discord

import (
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand("trusted", "List trusted communities", "communities", func(ctx *CommandContext) error {
		return nil
	})

	if cmd.Name != "trusted" {
		t.Errorf("cmd.Name = %v, want trusted", cmd.Name)
	}
	if cmd.Category != "communities" {
		t.Errorf("cmd.Category = %v, want communities", cmd.Category)
	}
	if cmd.RequiresRoles || cmd.RequiresApikey || cmd.DevOnly {
		t.Error("new command should carry no gates by default")
	}
}

func TestCommandBuilders(t *testing.T) {
	cmd := NewCommand("addrule", "Add a rule filter", "rules", func(ctx *CommandContext) error {
		return nil
	}).
		WithAliases("addrules").
		WithUsage("addrule [rule ids...]").
		WithPermissions(models.CapSetCategories).
		RequiresAPIKey()

	if !cmd.RequiresRoles {
		t.Error("WithPermissions should set RequiresRoles")
	}
	if len(cmd.RequiredPermissions) != 1 || cmd.RequiredPermissions[0] != models.CapSetCategories {
		t.Errorf("cmd.RequiredPermissions = %v, want [%v]", cmd.RequiredPermissions, models.CapSetCategories)
	}
	if !cmd.RequiresApikey {
		t.Error("RequiresAPIKey should set RequiresApikey")
	}
	if cmd.Usage != "addrule [rule ids...]" {
		t.Errorf("cmd.Usage = %v, want addrule [rule ids...]", cmd.Usage)
	}
}

func TestCommandCollectionAliasResolution(t *testing.T) {
	cc := NewCommandCollection()
	cmd := NewCommand("removecommunity", "Remove trusted communities", "communities", func(ctx *CommandContext) error {
		return nil
	}).WithAliases("remcommunity", "removecommunities")
	cc.Set(cmd)

	for _, name := range []string{"removecommunity", "remcommunity", "REMOVECOMMUNITIES"} {
		got, ok := cc.Get(name)
		if !ok {
			t.Errorf("Get(%q) not found", name)
			continue
		}
		if got != cmd {
			t.Errorf("Get(%q) resolved to %v, want removecommunity", name, got.Name)
		}
	}

	if _, ok := cc.Get("nope"); ok {
		t.Error("Get(nope) found a command, want miss")
	}

	if cc.Size() != 1 {
		t.Errorf("cc.Size() = %d, want 1 (aliases are not distinct commands)", cc.Size())
	}
}
