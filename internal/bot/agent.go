package bot

// Agent represents an autonomous bot seated at a table.
type Agent struct {
	ID       string
	Name     string
	Level    BotLevel
	Strategy Brain
}

// NewAgent builds an agent from a bot identity, picking the strategy from
// its difficulty. Unknown difficulties fall back to fallback.
func NewAgent(identity BotIdentity, fallback BotLevel) *Agent {
	level, err := ParseBotLevel(identity.Difficulty)
	if err != nil {
		level = fallback
	}
	strategy, err := NewBrain(level)
	if err != nil {
		strategy, level = &BasicBrain{}, BotLevelBasic
	}
	name := identity.DisplayName
	if name == "" {
		name = identity.Username
	}
	return &Agent{ID: identity.UserID, Name: name, Level: level, Strategy: strategy}
}
