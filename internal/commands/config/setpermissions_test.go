package config

import (
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func TestFirstToken(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"429696038266208258", "429696038266208258"},
		{"<@&123> please", "<@&123>"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstToken(tt.content); got != tt.want {
			t.Errorf("firstToken(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestRoleMention(t *testing.T) {
	if got := roleMention("123"); got != "<@&123>" {
		t.Errorf("roleMention(123) = %q, want <@&123>", got)
	}
	if got := roleMention(""); got != "*unset*" {
		t.Errorf("roleMention(\"\") = %q, want *unset*", got)
	}
}

func TestBulkMappingKeepsValidSlots(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")

	// One invalid reference among five leaves that slot unset and the
	// other four intact in a single save
	mapping := models.RolePermissions{
		models.CapReports:        "r-reports",
		models.CapWebhooks:       "r-webhooks",
		models.CapSetConfig:      "",
		models.CapSetCategories:  "r-categories",
		models.CapSetCommunities: "r-communities",
	}
	for _, capability := range models.Capabilities {
		cfg.SetRole(capability, mapping[capability])
	}
	cfg.Normalize()

	for _, capability := range models.Capabilities {
		if got := cfg.RoleFor(capability); got != mapping[capability] {
			t.Errorf("RoleFor(%s) = %q, want %q", capability, got, mapping[capability])
		}
	}
}
