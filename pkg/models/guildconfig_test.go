package models

import (
	"reflect"
	"testing"
)

func TestAddTrustedCommunitiesNoDuplicates(t *testing.T) {
	cfg := NewGuildConfig("guild-1")
	cfg.TrustedCommunities = []string{"A"}

	added := cfg.AddTrustedCommunities("B", "A", "C", "B")
	if added != 2 {
		t.Errorf("added = %v, want %v", added, 2)
	}

	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(cfg.TrustedCommunities, want) {
		t.Errorf("TrustedCommunities = %v, want %v", cfg.TrustedCommunities, want)
	}
}

func TestRemoveRuleFiltersPreservesOrder(t *testing.T) {
	cfg := NewGuildConfig("guild-1")
	cfg.RuleFilters = []string{"r1", "r2", "r3", "r4"}

	removed := cfg.RemoveRuleFilters("r2", "r9")
	if removed != 1 {
		t.Errorf("removed = %v, want %v", removed, 1)
	}

	want := []string{"r1", "r3", "r4"}
	if !reflect.DeepEqual(cfg.RuleFilters, want) {
		t.Errorf("RuleFilters = %v, want %v", cfg.RuleFilters, want)
	}
}

func TestRemoveAbsentRuleIsNoOp(t *testing.T) {
	cfg := NewGuildConfig("guild-1")
	cfg.RuleFilters = []string{"r1", "r2"}

	if removed := cfg.RemoveRuleFilters("r5"); removed != 0 {
		t.Errorf("removed = %v, want %v", removed, 0)
	}

	want := []string{"r1", "r2"}
	if !reflect.DeepEqual(cfg.RuleFilters, want) {
		t.Errorf("RuleFilters = %v, want %v", cfg.RuleFilters, want)
	}
}

func TestRuleAtPosition(t *testing.T) {
	cfg := NewGuildConfig("guild-1")
	cfg.RuleFilters = []string{"r1", "r2", "r3"}

	tests := []struct {
		pos    int
		wantID string
		wantOK bool
	}{
		{1, "r1", true},
		{2, "r2", true},
		{3, "r3", true},
		{0, "", false},
		{4, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		id, ok := cfg.RuleAtPosition(tt.pos)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("RuleAtPosition(%d) = (%v, %v), want (%v, %v)",
				tt.pos, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestNormalizeFillsAndDropsRoleSlots(t *testing.T) {
	cfg := &GuildConfig{
		GuildID: "guild-1",
		Roles: RolePermissions{
			CapReports:          "123",
			Capability("bogus"): "999",
		},
	}
	cfg.Normalize()

	if len(cfg.Roles) != len(Capabilities) {
		t.Fatalf("Roles length = %v, want %v", len(cfg.Roles), len(Capabilities))
	}
	if cfg.RoleFor(CapReports) != "123" {
		t.Errorf("RoleFor(reports) = %v, want %v", cfg.RoleFor(CapReports), "123")
	}
	if _, exists := cfg.Roles[Capability("bogus")]; exists {
		t.Error("unknown capability should be dropped by Normalize")
	}
	if cfg.RoleFor(CapWebhooks) != "" {
		t.Errorf("RoleFor(webhooks) = %v, want empty", cfg.RoleFor(CapWebhooks))
	}
	if cfg.TrustedCommunities == nil || cfg.RuleFilters == nil {
		t.Error("Normalize should replace nil slices")
	}
}

func TestValidCapability(t *testing.T) {
	for _, c := range Capabilities {
		if !ValidCapability(c) {
			t.Errorf("ValidCapability(%v) = false, want true", c)
		}
	}
	if ValidCapability(Capability("admin")) {
		t.Error("ValidCapability(admin) = true, want false")
	}
}
