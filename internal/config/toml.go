package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Every field is
// optional; nil means "not set".
type FileConfig struct {
	Data    DataSection    `toml:"data"`
	Server  ServerSection  `toml:"server"`
	AI      AISection      `toml:"ai"`
	Redis   RedisSection   `toml:"redis"`
	Discord DiscordSection `toml:"discord"`
	Export  ExportSection  `toml:"export"`
	Log     LogSection     `toml:"log"`
}

// DataSection maps input file settings.
type DataSection struct {
	Players        *string `toml:"players"`
	ItemSummary    *string `toml:"item-summary"`
	ChampionIcons  *string `toml:"champion-icons"`
	RuneIcons      *string `toml:"rune-icons"`
	SpellIcons     *string `toml:"spell-icons"`
	DDragonVersion *string `toml:"ddragon-version"`
}

// ServerSection maps HTTP settings.
type ServerSection struct {
	Listen *string `toml:"listen"`
}

// AISection maps the chat-completions endpoint settings.
type AISection struct {
	URL           *string `toml:"url"`
	Key           *string `toml:"key"`
	Model         *string `toml:"model"`
	GatewayHeader *string `toml:"gateway-header"`
	GatewayKey    *string `toml:"gateway-key"`
	Timeout       *string `toml:"timeout"`
}

// RedisSection maps the commentary cache settings.
type RedisSection struct {
	URL       *string `toml:"url"`
	KeyPrefix *string `toml:"key-prefix"`
	TTL       *string `toml:"ttl"`
}

// DiscordSection maps bot settings.
type DiscordSection struct {
	Token   *string `toml:"token"`
	GuildID *string `toml:"guild-id"`
}

// ExportSection maps database export targets.
type ExportSection struct {
	SQLite      *string `toml:"sqlite"`
	DatabaseURL *string `toml:"database-url"`
}

// LogSection maps logging settings.
type LogSection struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
