package discord

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// HasCapabilities checks the invoking member against every required
// capability's configured role. Guild administrators and the guild owner
// are exempt. Returns the first missing capability for the error message.
func HasCapabilities(s *discordgo.Session, m *discordgo.MessageCreate, cfg *models.GuildConfig, caps []models.Capability) (bool, models.Capability) {
	if isGuildAdmin(s, m) {
		return true, ""
	}

	var roles []string
	if m.Member != nil {
		roles = m.Member.Roles
	}

	for _, capability := range caps {
		if !MemberHasCapability(roles, cfg, capability) {
			return false, capability
		}
	}
	return true, ""
}

// MemberHasCapability reports whether a member holding the given role IDs
// is mapped to the capability. An unset slot grants nobody.
func MemberHasCapability(memberRoles []string, cfg *models.GuildConfig, capability models.Capability) bool {
	roleID := cfg.RoleFor(capability)
	if roleID == "" {
		return false
	}
	for _, held := range memberRoles {
		if held == roleID {
			return true
		}
	}
	return false
}

// isGuildAdmin reports whether the invoker owns the guild or carries the
// administrator permission
func isGuildAdmin(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	guild, err := s.State.Guild(m.GuildID)
	if err == nil && guild != nil && guild.OwnerID == m.Author.ID {
		return true
	}

	perms, err := s.State.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		return false
	}
	return perms&discordgo.PermissionAdministrator != 0
}
