package rules

import (
	"reflect"
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func testCatalog() []models.Rule {
	return []models.Rule{
		{ID: "r1", ShortDesc: "Griefing", LongDesc: "Destroying another player's base"},
		{ID: "r2", ShortDesc: "Stealing", LongDesc: "Taking items without permission"},
		{ID: "r3", ShortDesc: "Slurs", LongDesc: "Use of discriminatory language"},
	}
}

func TestRemoveCandidatesResolvesPositions(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")
	cfg.RuleFilters = []string{"r1", "r2", "r3"}

	got := RemoveCandidates([]string{"2"}, testCatalog(), cfg)
	if len(got) != 1 || got[0].ID != "r2" {
		t.Fatalf("RemoveCandidates([2]) = %v, want [r2]", got)
	}

	cfg.RemoveRuleFilters(got[0].ID)
	want := []string{"r1", "r3"}
	if !reflect.DeepEqual(cfg.RuleFilters, want) {
		t.Errorf("RuleFilters = %v, want %v", cfg.RuleFilters, want)
	}
}

func TestRemoveCandidatesMixedTokens(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")
	cfg.RuleFilters = []string{"r1", "r2", "r3"}

	// "1" resolves to r1; "r3" is a literal ID; both collapse with their
	// duplicates
	got := RemoveCandidates([]string{"1", "r3", "r1", "3"}, testCatalog(), cfg)
	ids := make([]string, len(got))
	for i, rule := range got {
		ids[i] = rule.ID
	}
	want := []string{"r1", "r3"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("RemoveCandidates = %v, want %v", ids, want)
	}
}

func TestRemoveCandidatesDropsInvalidTokens(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")
	cfg.RuleFilters = []string{"r1"}

	// 0 and 9 are out-of-range positions, rX is unknown, r2 is not filtered
	got := RemoveCandidates([]string{"0", "9", "rX", "r2"}, testCatalog(), cfg)
	if len(got) != 0 {
		t.Errorf("RemoveCandidates = %v, want empty", got)
	}
}

func TestRemoveCandidatesAbsentIDIsNoOp(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")
	cfg.RuleFilters = []string{"r1", "r3"}

	got := RemoveCandidates([]string{"r2"}, testCatalog(), cfg)
	if len(got) != 0 {
		t.Errorf("RemoveCandidates(r2 not filtered) = %v, want empty", got)
	}
}

func TestAddCandidatesFiltersUnknownAndPresent(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")
	cfg.RuleFilters = []string{"r1"}

	got := AddCandidates([]string{"r2", "r1", "rX", "r2"}, testCatalog(), cfg)
	want := []string{"r2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AddCandidates = %v, want %v", got, want)
	}
}
