package discord

import (
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func TestMemberHasCapability(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")
	cfg.SetRole(models.CapSetCategories, "role-rules")

	if !MemberHasCapability([]string{"role-other", "role-rules"}, cfg, models.CapSetCategories) {
		t.Error("member holding the mapped role should have the capability")
	}
	if MemberHasCapability([]string{"role-other"}, cfg, models.CapSetCategories) {
		t.Error("member without the mapped role should lack the capability")
	}
	if MemberHasCapability(nil, cfg, models.CapSetCategories) {
		t.Error("member with no roles should lack the capability")
	}
}

func TestMemberHasCapabilityUnsetSlot(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")

	// Unset slots grant nobody, regardless of the roles the member holds
	if MemberHasCapability([]string{"role-a", "role-b"}, cfg, models.CapWebhooks) {
		t.Error("unset capability slot should grant nobody")
	}
}
