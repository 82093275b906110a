package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Paths    PathsConfig    `yaml:"paths"`
	Reports  ReportsConfig  `yaml:"reports"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// PathsConfig holds filesystem locations for JSON import and export.
type PathsConfig struct {
	InputDir  string `yaml:"input_dir"  env:"SLOVNYK_INPUT_DIR"  env-default:"input"`
	ExportDir string `yaml:"export_dir" env:"SLOVNYK_EXPORT_DIR" env-default:"export"`
}

// ReportsConfig holds report query limits.
type ReportsConfig struct {
	TopWordsLimit    int `yaml:"top_words_limit"    env:"REPORTS_TOP_WORDS_LIMIT"    env-default:"10"`
	RecentWordsLimit int `yaml:"recent_words_limit" env:"REPORTS_RECENT_WORDS_LIMIT" env-default:"10"`
}
