package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog" validate:"required"`
	Tasks    TasksConfig    `mapstructure:"tasks" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the optional snapshot-durability settings.
// An empty URL disables snapshots entirely; the in-memory stores are
// authoritative either way.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// CatalogConfig locates the vocabulary content catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// TasksConfig contains the background job schedule settings.
type TasksConfig struct {
	// StreakSweepAt is the UTC wall-clock time of the daily streak
	// sweep, in "HH:MM" form.
	StreakSweepAt string `mapstructure:"streak_sweep_at" validate:"required"`

	// SnapshotIntervalMinutes is how often learner state is flushed to
	// the snapshot store. Ignored when the database URL is empty.
	SnapshotIntervalMinutes int `mapstructure:"snapshot_interval_minutes" validate:"required,gt=0"`
}
