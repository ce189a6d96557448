// Package models contains the persisted document shapes and the remote
// moderation API entities referenced by them.
package models

// Capability names one of the fixed permission slots in a guild's role
// configuration. Commands declare which capability the invoking member
// must hold.
type Capability string

const (
	CapReports        Capability = "reports"
	CapWebhooks       Capability = "webhooks"
	CapSetConfig      Capability = "setConfig"
	CapSetCategories  Capability = "setCategories"
	CapSetCommunities Capability = "setCommunities"
)

// Capabilities lists every permission slot in the fixed order the bulk
// setpermissions flow iterates them.
var Capabilities = []Capability{
	CapReports,
	CapWebhooks,
	CapSetConfig,
	CapSetCategories,
	CapSetCommunities,
}

// ValidCapability reports whether c is one of the known permission slots
func ValidCapability(c Capability) bool {
	for _, known := range Capabilities {
		if c == known {
			return true
		}
	}
	return false
}

// RolePermissions maps a capability to the guild role ID allowed to use it.
// An empty string means the slot is unset.
type RolePermissions map[Capability]string

// GuildConfig is the per-guild configuration document, one per Discord
// server, stored in the "guildconfigs" collection keyed by guildId.
type GuildConfig struct {
	GuildID            string          `bson:"guildId" json:"guildId"`
	CommunityName      string          `bson:"communityName" json:"communityName"`
	CommunityID        string          `bson:"communityId,omitempty" json:"communityId,omitempty"`
	Contact            string          `bson:"contact" json:"contact"`
	APIKey             string          `bson:"apikey,omitempty" json:"apikey,omitempty"`
	TrustedCommunities []string        `bson:"trustedCommunities" json:"trustedCommunities"`
	RuleFilters        []string        `bson:"ruleFilters" json:"ruleFilters"`
	Roles              RolePermissions `bson:"roles" json:"roles"`
}

// NewGuildConfig returns the default configuration created implicitly on a
// guild's first read.
func NewGuildConfig(guildID string) *GuildConfig {
	cfg := &GuildConfig{
		GuildID:            guildID,
		TrustedCommunities: []string{},
		RuleFilters:        []string{},
		Roles:              RolePermissions{},
	}
	cfg.Normalize()
	return cfg
}

// Normalize validates the role mapping after a load: every known capability
// gets an entry (empty when unset) and unknown keys are dropped. Nil slices
// are replaced so mutation helpers can append safely.
func (g *GuildConfig) Normalize() {
	if g.TrustedCommunities == nil {
		g.TrustedCommunities = []string{}
	}
	if g.RuleFilters == nil {
		g.RuleFilters = []string{}
	}

	normalized := make(RolePermissions, len(Capabilities))
	for _, c := range Capabilities {
		normalized[c] = g.Roles[c]
	}
	g.Roles = normalized
}

// Clone returns an independent copy so a handler can stage mutations
// without touching the cached document until the save commits.
func (g *GuildConfig) Clone() *GuildConfig {
	dup := *g
	dup.TrustedCommunities = append([]string{}, g.TrustedCommunities...)
	dup.RuleFilters = append([]string{}, g.RuleFilters...)
	dup.Roles = make(RolePermissions, len(g.Roles))
	for k, v := range g.Roles {
		dup.Roles[k] = v
	}
	return &dup
}

// HasTrustedCommunity reports whether the community ID is already trusted
func (g *GuildConfig) HasTrustedCommunity(id string) bool {
	for _, existing := range g.TrustedCommunities {
		if existing == id {
			return true
		}
	}
	return false
}

// AddTrustedCommunities appends the given community IDs, skipping any that
// are already present so the list never holds duplicates. Returns how many
// were actually added.
func (g *GuildConfig) AddTrustedCommunities(ids ...string) int {
	added := 0
	for _, id := range ids {
		if g.HasTrustedCommunity(id) {
			continue
		}
		g.TrustedCommunities = append(g.TrustedCommunities, id)
		added++
	}
	return added
}

// RemoveTrustedCommunities drops the given community IDs; IDs not present
// are no-ops. Relative order of the survivors is preserved.
func (g *GuildConfig) RemoveTrustedCommunities(ids ...string) int {
	return removeAll(&g.TrustedCommunities, ids)
}

// HasRuleFilter reports whether the rule ID is in the guild's filters
func (g *GuildConfig) HasRuleFilter(id string) bool {
	for _, existing := range g.RuleFilters {
		if existing == id {
			return true
		}
	}
	return false
}

// AddRuleFilters appends the given rule IDs, skipping duplicates. The
// existing ordering is never disturbed because positions are meaningful:
// removal-by-position resolves against the current sequence.
func (g *GuildConfig) AddRuleFilters(ids ...string) int {
	added := 0
	for _, id := range ids {
		if g.HasRuleFilter(id) {
			continue
		}
		g.RuleFilters = append(g.RuleFilters, id)
		added++
	}
	return added
}

// RemoveRuleFilters drops the given rule IDs, preserving the order of the
// remaining filters. IDs not present are no-ops.
func (g *GuildConfig) RemoveRuleFilters(ids ...string) int {
	return removeAll(&g.RuleFilters, ids)
}

// RuleAtPosition resolves a 1-based position in the guild's current rule
// filter ordering to the rule ID stored there.
func (g *GuildConfig) RuleAtPosition(pos int) (string, bool) {
	if pos < 1 || pos > len(g.RuleFilters) {
		return "", false
	}
	return g.RuleFilters[pos-1], true
}

// RoleFor returns the role ID mapped to a capability, empty when unset
func (g *GuildConfig) RoleFor(c Capability) string {
	if g.Roles == nil {
		return ""
	}
	return g.Roles[c]
}

// SetRole overwrites the role mapping for a single capability
func (g *GuildConfig) SetRole(c Capability, roleID string) {
	if g.Roles == nil {
		g.Roles = RolePermissions{}
	}
	g.Roles[c] = roleID
}

// removeAll filters ids out of *list in place, keeping order stable
func removeAll(list *[]string, ids []string) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := (*list)[:0]
	removed := 0
	for _, existing := range *list {
		if drop[existing] {
			removed++
			continue
		}
		kept = append(kept, existing)
	}
	*list = kept
	return removed
}
