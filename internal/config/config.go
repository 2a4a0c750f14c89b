package config

import (
	"github.com/joho/godotenv"

	"taskboard/internal/util"
)

// Config carries the runtime settings for the board service. The fallback
// identities are explicit configuration rather than literals buried in the
// mutation logic.
type Config struct {
	Addr      string
	DBPath    string
	StaticDir string

	// FallbackListID receives the tasks of a list deleted without cascade.
	// The list must exist; reassignment fails at the storage layer otherwise.
	FallbackListID int64
	// DefaultCreatorID is used when a create request names no creator.
	DefaultCreatorID int64
	// DefaultStatusID is looked up when a create request names no status.
	DefaultStatusID int64
	// DefaultPriorityID is looked up when a create request names no priority.
	DefaultPriorityID int64
}

// Load reads configuration from the environment, honouring a local .env
// file when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:              util.EnvOrDefault("TASKBOARD_ADDR", ":8080"),
		DBPath:            util.EnvOrDefault("TASKBOARD_DB_PATH", "data/taskboard.db"),
		StaticDir:         util.EnvOrDefault("TASKBOARD_STATIC_DIR", "web/dist"),
		FallbackListID:    util.EnvInt64OrDefault("TASKBOARD_FALLBACK_LIST_ID", 1),
		DefaultCreatorID:  util.EnvInt64OrDefault("TASKBOARD_DEFAULT_CREATOR_ID", 1),
		DefaultStatusID:   util.EnvInt64OrDefault("TASKBOARD_DEFAULT_STATUS_ID", 4),
		DefaultPriorityID: util.EnvInt64OrDefault("TASKBOARD_DEFAULT_PRIORITY_ID", 4),
	}
}
