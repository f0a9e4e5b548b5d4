package bot

import (
	"fmt"
	"strings"
)

// BotLevel selects a built-in strategy.
type BotLevel int

const (
	BotLevelPassive BotLevel = iota
	BotLevelBasic
	BotLevelAdvanced
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelPassive:
		return "passive"
	case BotLevelBasic:
		return "basic"
	case BotLevelAdvanced:
		return "advanced"
	}
	return fmt.Sprintf("BotLevel(%d)", int(l))
}

// ParseBotLevel accepts a level name or a difficulty label.
func ParseBotLevel(v string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "passive", "trivial", "easy":
		return BotLevelPassive, nil
	case "basic", "medium":
		return BotLevelBasic, nil
	case "advanced", "hard":
		return BotLevelAdvanced, nil
	}
	return 0, fmt.Errorf("unknown bot level: %q", v)
}

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelPassive:
		return PassiveBrain{}, nil
	case BotLevelBasic:
		return &BasicBrain{}, nil
	case BotLevelAdvanced:
		return &AdvancedBrain{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
