package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type GameConfig struct {
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding bots to a solo human lobby.
	BotAutoFillDelaySeconds int     `json:"bot_auto_fill_delay_seconds"`
	BotMinDelaySeconds      float64 `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds      float64 `json:"bot_max_delay_seconds"`
	BotLevel                string  `json:"bot_level"`
	ArchiveHands            bool    `json:"archive_hands"`
}

// Defaults used when no config file was loaded or a field is unset.
const (
	DefaultTurnDurationSeconds     = 20
	DefaultBotAutoFillDelaySeconds = 10
	DefaultBotMinDelaySeconds      = 0.8
	DefaultBotMaxDelaySeconds      = 2.0
	DefaultBotLevel                = "advanced"
)

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		c.applyDefaults()
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or defaults when
// nothing was loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		c := &GameConfig{}
		c.applyDefaults()
		return c
	}
	return cfg
}

func (c *GameConfig) applyDefaults() {
	if c.TurnDurationSeconds <= 0 {
		c.TurnDurationSeconds = DefaultTurnDurationSeconds
	}
	if c.BotAutoFillDelaySeconds <= 0 {
		c.BotAutoFillDelaySeconds = DefaultBotAutoFillDelaySeconds
	}
	if c.BotMinDelaySeconds <= 0 {
		c.BotMinDelaySeconds = DefaultBotMinDelaySeconds
	}
	if c.BotMaxDelaySeconds <= 0 {
		c.BotMaxDelaySeconds = DefaultBotMaxDelaySeconds
	}
	if c.BotMaxDelaySeconds < c.BotMinDelaySeconds {
		c.BotMaxDelaySeconds = c.BotMinDelaySeconds
	}
	if c.BotLevel == "" {
		c.BotLevel = DefaultBotLevel
	}
}
