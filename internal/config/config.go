// Package config provides configuration management for the ARAM dashboard.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultConfigFile is read when CONFIG_FILE is not set.
const DefaultConfigFile = "aramps.toml"

// Config holds all configuration values for the application.
type Config struct {
	// Data files
	PlayersCSV       string
	ItemSummaryCSV   string
	ChampionIconsCSV string
	RuneIconsCSV     string
	SpellIconsCSV    string

	// Data Dragon
	DDragonVersion string

	// HTTP
	ListenAddr string

	// AI / LLM API
	AIAPIURL        string
	AIAPIKey        string
	AIModel         string
	AIGatewayHeader string
	AIGatewayKey    string
	AITimeout       time.Duration

	// Redis
	RedisURL       string
	RedisKeyPrefix string
	RedisTTL       time.Duration

	// Discord
	DiscordToken   string
	DiscordGuildID string

	// Export
	ExportSQLite string
	DatabaseURL  string

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads .env, then the TOML file at path (CONFIG_FILE or
// DefaultConfigFile when path is empty), then environment variables.
// Environment values override file values; defaults fill the rest.
func Load(path string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	if path == "" {
		path = getEnvOrDefault("CONFIG_FILE", DefaultConfigFile)
	}
	fc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		// Data files
		PlayersCSV:       pick("PLAYERS_CSV", fc.Data.Players, "aram_participants_clean_preprocessed.csv"),
		ItemSummaryCSV:   pick("ITEM_SUMMARY_CSV", fc.Data.ItemSummary, "item_summary_with_icons_from_clean.csv"),
		ChampionIconsCSV: pick("CHAMPION_ICONS_CSV", fc.Data.ChampionIcons, "champion_icons.csv"),
		RuneIconsCSV:     pick("RUNE_ICONS_CSV", fc.Data.RuneIcons, "rune_icons.csv"),
		SpellIconsCSV:    pick("SPELL_ICONS_CSV", fc.Data.SpellIcons, "spell_icons.csv"),

		// Data Dragon
		DDragonVersion: pick("DDRAGON_VERSION", fc.Data.DDragonVersion, "15.16.1"),

		// HTTP
		ListenAddr: pick("LISTEN_ADDR", fc.Server.Listen, ":8080"),

		// AI / LLM API
		AIAPIURL:        pick("AI_API_URL", fc.AI.URL, ""),
		AIAPIKey:        pick("AI_API_KEY", fc.AI.Key, ""),
		AIModel:         pick("AI_MODEL", fc.AI.Model, "gpt-4o-mini"),
		AIGatewayHeader: pick("AI_GATEWAY_HEADER", fc.AI.GatewayHeader, "X-Gateway-Key"),
		AIGatewayKey:    pick("AI_GATEWAY_KEY", fc.AI.GatewayKey, ""),

		// Redis
		RedisURL:       pick("REDIS_URL", fc.Redis.URL, ""),
		RedisKeyPrefix: pick("REDIS_KEY_PREFIX", fc.Redis.KeyPrefix, "aramps:teamcomp:"),

		// Discord
		DiscordToken:   pick("DISCORD_TOKEN", fc.Discord.Token, ""),
		DiscordGuildID: pick("DISCORD_GUILD_ID", fc.Discord.GuildID, ""),

		// Export
		ExportSQLite: pick("EXPORT_SQLITE", fc.Export.SQLite, "aram_stats.db"),
		DatabaseURL:  pick("DATABASE_URL", fc.Export.DatabaseURL, ""),

		// Logging
		LogLevel: pick("LOG_LEVEL", fc.Log.Level, "info"),
		LogFile:  pick("LOG_FILE", fc.Log.File, ""),
	}

	var errs []error
	if cfg.AITimeout, err = pickDuration("AI_TIMEOUT", fc.AI.Timeout, 120*time.Second); err != nil {
		errs = append(errs, err)
	}
	if cfg.RedisTTL, err = pickDuration("REDIS_TTL", fc.Redis.TTL, 24*time.Hour); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	log.Debug().Str("file", path).Str("players", cfg.PlayersCSV).Msg("configuration loaded")
	return cfg, nil
}

// Validate checks that the configuration is usable. Optional integrations
// (AI, Redis, Discord) are only checked for consistency.
func (c *Config) Validate() error {
	var errs []string

	if c.PlayersCSV == "" {
		errs = append(errs, "PLAYERS_CSV is missing")
	}
	if c.ListenAddr == "" {
		errs = append(errs, "LISTEN_ADDR is missing")
	}
	if c.DDragonVersion == "" {
		errs = append(errs, "DDRAGON_VERSION is missing")
	}
	if c.AIAPIURL != "" && c.AIAPIKey == "" {
		errs = append(errs, "AI_API_KEY is missing while AI_API_URL is set")
	}
	if c.AIGatewayKey != "" && c.AIGatewayHeader == "" {
		errs = append(errs, "AI_GATEWAY_HEADER is missing while AI_GATEWAY_KEY is set")
	}
	if c.AITimeout <= 0 {
		errs = append(errs, "AI_TIMEOUT must be positive")
	}
	if c.RedisURL != "" && c.RedisTTL <= 0 {
		errs = append(errs, "REDIS_TTL must be positive")
	}

	if len(errs) > 0 {
		for _, e := range errs {
			log.Error().Msg(e)
		}
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}

// AIEnabled reports whether the team-composition endpoint is configured.
func (c *Config) AIEnabled() bool {
	return c.AIAPIURL != "" && c.AIAPIKey != ""
}

// DiscordEnabled reports whether the Discord bot should start.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// pick returns the environment value, then the file value, then def.
func pick(key string, file *string, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if file != nil && *file != "" {
		return *file
	}
	return def
}

func pickDuration(key string, file *string, def time.Duration) (time.Duration, error) {
	raw := pick(key, file, "")
	if raw == "" {
		return def, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d, nil
	}
	// Bare numbers are seconds.
	secs, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return time.Duration(secs) * time.Second, nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
