package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultTimezone                   = "Europe/London"
	defaultLogActivityRateLimitPerMin = 30
	defaultLeaderboardSize            = 10
	defaultLapseSweepIntervalMinutes  = 60
	defaultCalendarCacheSizeMB        = 10
)

type Config struct {
	Host string
	Port int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	// observability
	SentryEnabled         bool   `toml:"sentry_enabled"`
	HoneycombEnabled      bool   `toml:"honeycomb_enabled"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// domain
	Timezone                   string `toml:"timezone"`
	LogActivityRateLimitPerMin int    `toml:"log_activity_rate_limit_per_min"`
	LeaderboardSize            int    `toml:"leaderboard_size"`
	LapseSweepIntervalMinutes  int    `toml:"lapse_sweep_interval_minutes"`
	CalendarCacheSizeMB        int    `toml:"calendar_cache_size_mb"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the toml file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	if c.LogActivityRateLimitPerMin <= 0 {
		c.LogActivityRateLimitPerMin = defaultLogActivityRateLimitPerMin
	}
	if c.LeaderboardSize <= 0 {
		c.LeaderboardSize = defaultLeaderboardSize
	}
	if c.LapseSweepIntervalMinutes <= 0 {
		c.LapseSweepIntervalMinutes = defaultLapseSweepIntervalMinutes
	}
	if c.CalendarCacheSizeMB <= 0 {
		c.CalendarCacheSizeMB = defaultCalendarCacheSizeMB
	}
}
