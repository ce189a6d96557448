package models

// Community is a moderation organization registered with the shared API.
// Remote entities are read-only from the bot's perspective: they are
// fetched and referenced by ID, never created or edited locally.
type Community struct {
	ID      string `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	Contact string `json:"contact" bson:"contact"`
}

// Rule is a moderation policy entity from the shared API. Guilds select a
// subset of rule IDs as their filters.
type Rule struct {
	ID        string `json:"id" bson:"id"`
	ShortDesc string `json:"shortdesc" bson:"shortdesc"`
	LongDesc  string `json:"longdesc" bson:"longdesc"`
}

// Webhook identifies a Discord webhook registered with the shared API for
// report notifications.
type Webhook struct {
	ID      string `json:"id"`
	Token   string `json:"token"`
	GuildID string `json:"guildId,omitempty"`
}
