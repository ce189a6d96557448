package communities

import (
	"reflect"
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func testCatalog() []models.Community {
	return []models.Community{
		{ID: "A", Name: "Alpha", Contact: "alpha#0001"},
		{ID: "B", Name: "Bravo", Contact: "bravo#0002"},
		{ID: "C", Name: "Charlie", Contact: "charlie#0003"},
	}
}

func TestAddCandidatesFiltersUnknownAndPresent(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")
	cfg.TrustedCommunities = []string{"A"}

	// Z is not in the catalog, A is already trusted
	got := AddCandidates([]string{"B", "C", "Z", "A"}, testCatalog(), cfg)
	want := []string{"B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AddCandidates = %v, want %v", got, want)
	}
}

func TestAddCandidatesDeduplicatesArgs(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")

	got := AddCandidates([]string{"B", "B", "C", "B"}, testCatalog(), cfg)
	want := []string{"B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AddCandidates = %v, want %v", got, want)
	}
}

func TestAddCandidatesNothingToDo(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")
	cfg.TrustedCommunities = []string{"A", "B", "C"}

	if got := AddCandidates([]string{"A", "B", "Z"}, testCatalog(), cfg); len(got) != 0 {
		t.Errorf("AddCandidates = %v, want empty", got)
	}
}

func TestRemoveCandidatesOnlyTrusted(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")
	cfg.TrustedCommunities = []string{"A", "B"}

	got := RemoveCandidates([]string{"B", "C", "B"}, cfg)
	want := []string{"B"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveCandidates = %v, want %v", got, want)
	}
}

func TestAddThenApplyScenario(t *testing.T) {
	cfg := models.NewGuildConfig("guild-1")
	cfg.TrustedCommunities = []string{"A"}

	candidates := AddCandidates([]string{"B", "C", "Z"}, testCatalog(), cfg)
	cfg.AddTrustedCommunities(candidates...)

	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(cfg.TrustedCommunities, want) {
		t.Errorf("TrustedCommunities = %v, want %v", cfg.TrustedCommunities, want)
	}
}
