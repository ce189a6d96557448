package database

import (
	"errors"
	"sync"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrGuildConfigManagerNotInitialized = errors.New("guild config data manager not initialized")

// guildLocks serializes configuration mutation per guild inside this
// process. Without it two concurrent interactive flows for the same guild
// would race and the later save would silently win.
var guildLocks = struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}{locks: make(map[string]*sync.Mutex)}

// LockGuild acquires the mutation lock for a guild and returns the unlock
// function. Callers hold it across the load-mutate-save window of a
// confirmed command.
func LockGuild(guildID string) func() {
	guildLocks.mu.Lock()
	lock, ok := guildLocks.locks[guildID]
	if !ok {
		lock = &sync.Mutex{}
		guildLocks.locks[guildID] = lock
	}
	guildLocks.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func getGuildConfigManager() (*DataManager[models.GuildConfig], error) {
	if GlobalGuildConfigDM == nil {
		return nil, ErrGuildConfigManagerNotInitialized
	}
	return GlobalGuildConfigDM, nil
}

// LoadGuildConfig returns the guild's configuration document, creating a
// default in-memory record on a guild's first read. The record is not
// persisted until the first save. The returned value is a private copy:
// handlers stage their changes on it and commit with SaveGuildConfig.
func LoadGuildConfig(guildID string) (*models.GuildConfig, error) {
	dm, err := getGuildConfigManager()
	if err != nil {
		return nil, err
	}

	record, err := dm.Get(bson.M{"guildId": guildID})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return models.NewGuildConfig(guildID), nil
	}

	cfg := record.Clone()
	cfg.Normalize()
	return cfg, nil
}

// SaveGuildConfig persists the whole document by guild ID (upsert). Saves
// are wholesale, not per-field diffs.
func SaveGuildConfig(cfg *models.GuildConfig) error {
	dm, err := getGuildConfigManager()
	if err != nil {
		return err
	}

	cfg.Normalize()
	_, err = dm.Set(bson.M{"guildId": cfg.GuildID}, cfg)
	return err
}

// OnConfigSaved, when set, is called after every successful save made
// through MutateGuildConfig. The bootstrap wires it to the ops event feed.
var OnConfigSaved func(guildID string)

// MutateGuildConfig runs a confirmed mutation under the guild's lock:
// reload the current document, apply the change, save. Reloading inside
// the lock means two interleaved flows compose instead of the later save
// clobbering the earlier one.
func MutateGuildConfig(guildID string, mutate func(cfg *models.GuildConfig)) error {
	unlock := LockGuild(guildID)
	defer unlock()

	cfg, err := LoadGuildConfig(guildID)
	if err != nil {
		return err
	}
	mutate(cfg)
	if err := SaveGuildConfig(cfg); err != nil {
		return err
	}

	if OnConfigSaved != nil {
		OnConfigSaved(guildID)
	}
	return nil
}
